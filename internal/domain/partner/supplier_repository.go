package partner

import "context"

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier by its ID regardless of its active flag
	FindByID(ctx context.Context, id uint) (*Supplier, error)

	// FindActiveByID finds an active supplier by its ID
	FindActiveByID(ctx context.Context, id uint) (*Supplier, error)

	// FindAllActive finds all active suppliers ordered by name
	FindAllActive(ctx context.Context) ([]Supplier, error)

	// ExistsActiveByNameExcludingID checks if another active supplier has the name.
	// Comparison is case-insensitive. Pass id 0 when checking for a new supplier.
	ExistsActiveByNameExcludingID(ctx context.Context, name string, id uint) (bool, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error
}
