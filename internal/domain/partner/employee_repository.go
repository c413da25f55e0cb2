package partner

import "context"

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	// FindByID finds an employee by its ID regardless of its active flag
	FindByID(ctx context.Context, id uint) (*Employee, error)

	// FindActiveByID finds an active employee by its ID
	FindActiveByID(ctx context.Context, id uint) (*Employee, error)

	// FindAllActive finds all active employees ordered by last name
	FindAllActive(ctx context.Context) ([]Employee, error)

	// ExistsActiveByEmailExcludingID checks if another active employee has the email.
	// Pass id 0 when checking for a new employee.
	ExistsActiveByEmailExcludingID(ctx context.Context, email string, id uint) (bool, error)

	// Save creates or updates an employee
	Save(ctx context.Context, employee *Employee) error
}
