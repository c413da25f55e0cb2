package partner

import (
	"context"

	"github.com/erp/crm/internal/domain/shared"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID regardless of its active flag
	FindByID(ctx context.Context, id uint) (*Customer, error)

	// FindActiveByID finds an active customer by its ID
	FindActiveByID(ctx context.Context, id uint) (*Customer, error)

	// FindAllActive finds all active customers, newest first
	FindAllActive(ctx context.Context) ([]Customer, error)

	// FindActivePage finds one page of active customers
	FindActivePage(ctx context.Context, filter shared.Filter) ([]Customer, int64, error)

	// SearchActive finds active customers whose name or email contains filter.Search
	SearchActive(ctx context.Context, filter shared.Filter) ([]Customer, int64, error)

	// FindRecentActive finds the most recently created active customers
	FindRecentActive(ctx context.Context, limit int) ([]Customer, error)

	// FindActiveWithPhone finds active customers that have a phone number
	FindActiveWithPhone(ctx context.Context) ([]Customer, error)

	// ExistsByEmail checks if any customer, active or not, has the email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsActiveByEmail checks if an active customer has the email
	ExistsActiveByEmail(ctx context.Context, email string) (bool, error)

	// ExistsActiveByEmailExcludingID checks if another active customer has the email
	ExistsActiveByEmailExcludingID(ctx context.Context, email string, id uint) (bool, error)

	// CountActive counts active customers
	CountActive(ctx context.Context) (int64, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error
}
