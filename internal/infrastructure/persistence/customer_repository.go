package persistence

import (
	"context"

	"github.com/erp/crm/internal/domain/partner"
	"github.com/erp/crm/internal/domain/shared"
	"github.com/erp/crm/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by ID regardless of its active flag
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindActiveByID finds an active customer by ID
func (r *GormCustomerRepository) FindActiveByID(ctx context.Context, id uint) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAllActive finds all active customers, newest first
func (r *GormCustomerRepository) FindAllActive(ctx context.Context) ([]partner.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.active(ctx).Order("created_at DESC, id DESC").Find(&customerModels).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainCustomers(customerModels), nil
}

// FindActivePage finds one page of active customers and the total count
func (r *GormCustomerRepository) FindActivePage(ctx context.Context, filter shared.Filter) ([]partner.Customer, int64, error) {
	return r.page(ctx, r.active(ctx), filter)
}

// SearchActive finds active customers whose first name, last name or email
// contains filter.Search, ignoring case
func (r *GormCustomerRepository) SearchActive(ctx context.Context, filter shared.Filter) ([]partner.Customer, int64, error) {
	pattern := containsPattern(filter.Search)
	query := r.active(ctx).Where(
		`(LOWER(firstname) LIKE ? ESCAPE '\' OR LOWER(lastname) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\')`,
		pattern, pattern, pattern,
	)
	return r.page(ctx, query, filter)
}

// FindRecentActive finds the most recently created active customers
func (r *GormCustomerRepository) FindRecentActive(ctx context.Context, limit int) ([]partner.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.active(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&customerModels).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainCustomers(customerModels), nil
}

// FindActiveWithPhone finds active customers that have a phone number
func (r *GormCustomerRepository) FindActiveWithPhone(ctx context.Context) ([]partner.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.active(ctx).
		Where("phone IS NOT NULL AND phone <> ?", "").
		Order("id ASC").
		Find(&customerModels).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainCustomers(customerModels), nil
}

// ExistsByEmail checks if any customer, active or not, has the email
func (r *GormCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CustomerModel{}).
		Where("LOWER(email) = ?", partner.NormalizeEmail(email)).
		Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// ExistsActiveByEmail checks if an active customer has the email
func (r *GormCustomerRepository) ExistsActiveByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.active(ctx).
		Where("LOWER(email) = ?", partner.NormalizeEmail(email)).
		Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// ExistsActiveByEmailExcludingID checks if an active customer other than id has the email
func (r *GormCustomerRepository) ExistsActiveByEmailExcludingID(ctx context.Context, email string, id uint) (bool, error) {
	var count int64
	if err := r.active(ctx).
		Where("LOWER(email) = ? AND id <> ?", partner.NormalizeEmail(email), id).
		Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// CountActive counts active customers
func (r *GormCustomerRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.active(ctx).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// Save inserts a new customer or updates an existing one.
// The store assigns the ID on insert; creation metadata is never rewritten.
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	if customer.IsNew() {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return translateError(err)
		}
		customer.ID = model.ID
		return nil
	}

	result := r.db.WithContext(ctx).Model(model).
		Select("*").
		Omit(models.ImmutableColumns...).
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCustomerRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.CustomerModel{}).Where("active = ?", true)
}

func (r *GormCustomerRepository) page(ctx context.Context, query *gorm.DB, filter shared.Filter) ([]partner.Customer, int64, error) {
	filter = filter.Normalize()

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	orderBy := ValidateSortField(filter.OrderBy, CustomerSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var customerModels []models.CustomerModel
	if err := query.Session(&gorm.Session{}).
		Order(orderBy + " " + orderDir).
		Order("id " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&customerModels).Error; err != nil {
		return nil, 0, translateError(err)
	}
	return toDomainCustomers(customerModels), total, nil
}

func toDomainCustomers(customerModels []models.CustomerModel) []partner.Customer {
	customers := make([]partner.Customer, len(customerModels))
	for i := range customerModels {
		customers[i] = *customerModels[i].ToDomain()
	}
	return customers
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
