package partner

import (
	"context"

	"github.com/erp/crm/internal/domain/partner"
	"github.com/erp/crm/internal/domain/shared"
	"github.com/erp/crm/internal/infrastructure/telemetry"
)

const employeeEntity = "Employee"

// EmployeeService handles employee-related business operations
type EmployeeService struct {
	employeeRepo partner.EmployeeRepository
	metrics      *telemetry.PartnerMetrics
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo partner.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// SetMetrics sets the collector used to count mutations
func (s *EmployeeService) SetMetrics(m *telemetry.PartnerMetrics) {
	s.metrics = m
}

// GetAll retrieves all active employees
func (s *EmployeeService) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.employeeRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return ToEmployeeResponses(employees), nil
}

// GetByID retrieves an active employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, id uint) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, employeeEntity, id)
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Save creates an employee when id is zero, otherwise replaces the fields
// of the active employee with that id
func (s *EmployeeService) Save(ctx context.Context, id uint, req SaveEmployeeRequest) (_ *EmployeeResponse, err error) {
	ctx, finish := startMutation(ctx, s.metrics, "employee", saveOperation(id), id)
	defer func() { finish(err) }()

	actor := shared.ActorFromContext(ctx)

	var employee *partner.Employee
	if id == 0 {
		created, err := partner.NewEmployee(req.FirstName, req.LastName, req.Email, req.Position, req.Salary, actor)
		if err != nil {
			return nil, err
		}
		employee = created
	} else {
		existing, err := s.employeeRepo.FindActiveByID(ctx, id)
		if err != nil {
			return nil, notFoundAs(err, employeeEntity, id)
		}
		existing.FirstName = partner.NormalizeText(req.FirstName)
		existing.LastName = partner.NormalizeText(req.LastName)
		existing.Email = partner.NormalizeEmail(req.Email)
		existing.Position = partner.OptionalText(req.Position)
		existing.Salary = req.Salary
		if err := existing.Validate(); err != nil {
			return nil, err
		}
		existing.Touch(actor)
		employee = existing
	}

	exists, err := s.employeeRepo.ExistsActiveByEmailExcludingID(ctx, employee.Email, employee.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.BusinessRuleError("Employee with email already exists: %s", employee.Email)
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Remove soft-deletes an active employee
func (s *EmployeeService) Remove(ctx context.Context, id uint) (err error) {
	ctx, finish := startMutation(ctx, s.metrics, "employee", "delete", id)
	defer func() { finish(err) }()

	employee, err := s.employeeRepo.FindActiveByID(ctx, id)
	if err != nil {
		return notFoundAs(err, employeeEntity, id)
	}

	employee.Deactivate(shared.ActorFromContext(ctx))
	return s.employeeRepo.Save(ctx, employee)
}
