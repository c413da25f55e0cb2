package partner

import (
	"context"

	"github.com/erp/crm/internal/domain/partner"
	"github.com/erp/crm/internal/domain/shared"
	"github.com/erp/crm/internal/infrastructure/telemetry"
)

const supplierEntity = "Supplier"

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	metrics      *telemetry.PartnerMetrics
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
	}
}

// SetMetrics sets the collector used to count mutations
func (s *SupplierService) SetMetrics(m *telemetry.PartnerMetrics) {
	s.metrics = m
}

// GetAll retrieves all active suppliers
func (s *SupplierService) GetAll(ctx context.Context) ([]SupplierResponse, error) {
	suppliers, err := s.supplierRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponses(suppliers), nil
}

// GetByID retrieves an active supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uint) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, supplierEntity, id)
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Save creates a supplier when id is zero, otherwise replaces the fields
// of the active supplier with that id
func (s *SupplierService) Save(ctx context.Context, id uint, req SaveSupplierRequest) (_ *SupplierResponse, err error) {
	ctx, finish := startMutation(ctx, s.metrics, "supplier", saveOperation(id), id)
	defer func() { finish(err) }()

	actor := shared.ActorFromContext(ctx)

	var supplier *partner.Supplier
	if id == 0 {
		created, err := partner.NewSupplier(req.Name, req.ContactName, req.Email, req.Phone, req.Address, actor)
		if err != nil {
			return nil, err
		}
		supplier = created
	} else {
		existing, err := s.supplierRepo.FindActiveByID(ctx, id)
		if err != nil {
			return nil, notFoundAs(err, supplierEntity, id)
		}
		existing.Name = partner.NormalizeText(req.Name)
		existing.ContactName = partner.OptionalText(req.ContactName)
		existing.Email = partner.OptionalEmail(req.Email)
		existing.Phone = partner.OptionalText(req.Phone)
		existing.Address = partner.OptionalText(req.Address)
		if err := existing.Validate(); err != nil {
			return nil, err
		}
		existing.Touch(actor)
		supplier = existing
	}

	exists, err := s.supplierRepo.ExistsActiveByNameExcludingID(ctx, supplier.Name, supplier.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.BusinessRuleError("Supplier with name already exists: %s", supplier.Name)
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Remove soft-deletes an active supplier
func (s *SupplierService) Remove(ctx context.Context, id uint) (err error) {
	ctx, finish := startMutation(ctx, s.metrics, "supplier", "delete", id)
	defer func() { finish(err) }()

	supplier, err := s.supplierRepo.FindActiveByID(ctx, id)
	if err != nil {
		return notFoundAs(err, supplierEntity, id)
	}

	supplier.Deactivate(shared.ActorFromContext(ctx))
	return s.supplierRepo.Save(ctx, supplier)
}
