package partner

import (
	"context"
	"errors"

	"github.com/erp/crm/internal/domain/partner"
	"github.com/erp/crm/internal/domain/shared"
	"github.com/erp/crm/internal/infrastructure/telemetry"
)

// Recent-customer limits
const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

const customerEntity = "Customer"

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	metrics      *telemetry.PartnerMetrics
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// SetMetrics sets the collector used to count mutations
func (s *CustomerService) SetMetrics(m *telemetry.PartnerMetrics) {
	s.metrics = m
}

// Create creates a new customer.
// The email must not belong to another active customer.
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (_ *CustomerResponse, err error) {
	ctx, finish := startMutation(ctx, s.metrics, "customer", "create", 0)
	defer func() { finish(err) }()

	customer := ToCustomerEntity(&req)
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.ExistsActiveByEmail(ctx, customer.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicateEmailError(customer.Email)
	}

	customer.MarkCreated(shared.ActorFromContext(ctx))
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves an active customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uint) (*CustomerResponse, error) {
	customer, err := s.findActive(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves all active customers, newest first
func (s *CustomerService) List(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}

// ListPage retrieves one page of active customers
func (s *CustomerService) ListPage(ctx context.Context, filter CustomerListFilter) (shared.Paginated[CustomerResponse], error) {
	domainFilter := filter.ToSharedFilter()
	domainFilter.Search = ""

	customers, total, err := s.customerRepo.FindActivePage(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[CustomerResponse]{}, err
	}

	return toCustomerPage(customers, total, domainFilter), nil
}

// Search retrieves a page of active customers whose first name, last name or
// email contains the query, ignoring case. An empty query lists all.
func (s *CustomerService) Search(ctx context.Context, filter CustomerListFilter) (shared.Paginated[CustomerResponse], error) {
	domainFilter := filter.ToSharedFilter()
	domainFilter.Search = partner.NormalizeText(domainFilter.Search)
	if domainFilter.Search == "" {
		return s.ListPage(ctx, filter)
	}

	customers, total, err := s.customerRepo.SearchActive(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[CustomerResponse]{}, err
	}

	return toCustomerPage(customers, total, domainFilter), nil
}

// Update merges the supplied fields into an active customer
func (s *CustomerService) Update(ctx context.Context, id uint, req UpdateCustomerRequest) (_ *CustomerResponse, err error) {
	ctx, finish := startMutation(ctx, s.metrics, "customer", "update", id)
	defer func() { finish(err) }()

	customer, err := s.findActive(ctx, id)
	if err != nil {
		return nil, err
	}

	previousEmail := customer.Email
	MergeCustomer(customer, &req)
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if customer.Email != previousEmail {
		exists, err := s.customerRepo.ExistsActiveByEmailExcludingID(ctx, customer.Email, customer.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, duplicateEmailError(customer.Email)
		}
	}

	customer.Touch(shared.ActorFromContext(ctx))
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete soft-deletes an active customer. The row is retained.
func (s *CustomerService) Delete(ctx context.Context, id uint) (err error) {
	ctx, finish := startMutation(ctx, s.metrics, "customer", "delete", id)
	defer func() { finish(err) }()

	customer, err := s.findActive(ctx, id)
	if err != nil {
		return err
	}

	customer.Deactivate(shared.ActorFromContext(ctx))
	return s.customerRepo.Save(ctx, customer)
}

// ToggleStatus flips a customer between active and inactive.
// Restoring fails if another active customer has taken the email meanwhile.
func (s *CustomerService) ToggleStatus(ctx context.Context, id uint) (_ *CustomerResponse, err error) {
	ctx, finish := startMutation(ctx, s.metrics, "customer", "toggle_status", id)
	defer func() { finish(err) }()

	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, customerEntity, id)
	}

	if !customer.Active {
		exists, err := s.customerRepo.ExistsActiveByEmailExcludingID(ctx, customer.Email, customer.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, duplicateEmailError(customer.Email)
		}
	}

	customer.ToggleStatus(shared.ActorFromContext(ctx))
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// ExistsByEmail checks if an active customer has the email
func (s *CustomerService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	email = partner.NormalizeEmail(email)
	if email == "" {
		return false, nil
	}
	return s.customerRepo.ExistsActiveByEmail(ctx, email)
}

// ListWithValidPhone retrieves active customers whose phone matches the
// international number pattern
func (s *CustomerService) ListWithValidPhone(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindActiveWithPhone(ctx)
	if err != nil {
		return nil, err
	}

	valid := make([]partner.Customer, 0, len(customers))
	for _, c := range customers {
		if c.HasValidPhone() {
			valid = append(valid, c)
		}
	}
	return ToCustomerResponses(valid), nil
}

// CountActive counts active customers
func (s *CustomerService) CountActive(ctx context.Context) (int64, error) {
	return s.customerRepo.CountActive(ctx)
}

// ListRecent retrieves the most recently created active customers
func (s *CustomerService) ListRecent(ctx context.Context, limit int) ([]CustomerResponse, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	customers, err := s.customerRepo.FindRecentActive(ctx, limit)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}

func (s *CustomerService) findActive(ctx context.Context, id uint) (*partner.Customer, error) {
	customer, err := s.customerRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, customerEntity, id)
	}
	return customer, nil
}

// notFoundAs replaces a bare repository not-found with one naming the entity
func notFoundAs(err error, entity string, id uint) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NotFoundError(entity, id)
	}
	return err
}

func toCustomerPage(customers []partner.Customer, total int64, filter shared.Filter) shared.Paginated[CustomerResponse] {
	page := shared.NewPaginated(customers, total, filter.Page, filter.PageSize)
	return shared.MapPaginated(page, func(c partner.Customer) CustomerResponse {
		return ToCustomerResponse(&c)
	})
}

func duplicateEmailError(email string) error {
	return shared.BusinessRuleError("Customer with email already exists: %s", email)
}
