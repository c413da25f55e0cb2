package persistence

import (
	"context"

	"github.com/erp/crm/internal/domain/partner"
	"github.com/erp/crm/internal/domain/shared"
	"github.com/erp/crm/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by ID regardless of its active flag
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uint) (*partner.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindActiveByID finds an active employee by ID
func (r *GormEmployeeRepository) FindActiveByID(ctx context.Context, id uint) (*partner.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAllActive finds all active employees ordered by name
func (r *GormEmployeeRepository) FindAllActive(ctx context.Context) ([]partner.Employee, error) {
	var employeeModels []models.EmployeeModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("lastname ASC, firstname ASC, id ASC").
		Find(&employeeModels).Error; err != nil {
		return nil, translateError(err)
	}

	employees := make([]partner.Employee, len(employeeModels))
	for i := range employeeModels {
		employees[i] = *employeeModels[i].ToDomain()
	}
	return employees, nil
}

// ExistsActiveByEmailExcludingID checks if an active employee other than id has the email
func (r *GormEmployeeRepository) ExistsActiveByEmailExcludingID(ctx context.Context, email string, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).
		Where("LOWER(email) = ? AND active = ? AND id <> ?", partner.NormalizeEmail(email), true, id).
		Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// Save inserts a new employee or updates an existing one
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *partner.Employee) error {
	model := models.EmployeeModelFromDomain(employee)
	if employee.IsNew() {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return translateError(err)
		}
		employee.ID = model.ID
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

// Ensure GormEmployeeRepository implements EmployeeRepository
var _ partner.EmployeeRepository = (*GormEmployeeRepository)(nil)
