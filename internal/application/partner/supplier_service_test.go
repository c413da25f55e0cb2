package partner

import (
	"context"
	"testing"

	"github.com/erp/crm/internal/domain/partner"
	"github.com/erp/crm/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSupplier(id uint) *partner.Supplier {
	s, _ := partner.NewSupplier("Acme Supplies", nil, strPtr("sales@acme.example"), nil, nil, "")
	s.ID = id
	return s
}

func TestSupplierService_Save(t *testing.T) {
	t.Run("creates when id is zero", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		svc := NewSupplierService(repo)
		ctx := context.Background()

		repo.On("ExistsActiveByNameExcludingID", mock.Anything, "Acme Supplies", uint(0)).Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Supplier")).Return(nil)

		resp, err := svc.Save(ctx, 0, SaveSupplierRequest{
			Name:  " Acme Supplies ",
			Email: strPtr("Sales@Acme.example"),
			Phone: strPtr(" "),
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Supplies", resp.Name)
		assert.Equal(t, "sales@acme.example", *resp.Email)
		assert.Nil(t, resp.Phone)
	})

	t.Run("replaces fields of existing supplier", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		svc := NewSupplierService(repo)
		ctx := context.Background()
		existing := newTestSupplier(2)

		repo.On("FindActiveByID", mock.Anything, uint(2)).Return(existing, nil)
		repo.On("ExistsActiveByNameExcludingID", mock.Anything, "Acme Global", uint(2)).Return(false, nil)
		repo.On("Save", mock.Anything, existing).Return(nil)

		resp, err := svc.Save(ctx, 2, SaveSupplierRequest{Name: "Acme Global"})

		require.NoError(t, err)
		assert.Equal(t, "Acme Global", resp.Name)
		assert.Nil(t, resp.Email)
	})

	t.Run("rejects duplicate active name", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		svc := NewSupplierService(repo)
		ctx := context.Background()

		repo.On("ExistsActiveByNameExcludingID", mock.Anything, "Acme Supplies", uint(0)).Return(true, nil)

		_, err := svc.Save(ctx, 0, SaveSupplierRequest{Name: "Acme Supplies"})

		assert.ErrorIs(t, err, shared.ErrBusinessRule)
		assert.Contains(t, err.Error(), "Acme Supplies")
	})
}

func TestSupplierService_Remove(t *testing.T) {
	t.Run("soft deletes", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		svc := NewSupplierService(repo)
		ctx := context.Background()
		supplier := newTestSupplier(1)

		repo.On("FindActiveByID", mock.Anything, uint(1)).Return(supplier, nil)
		repo.On("Save", mock.Anything, supplier).Return(nil)

		require.NoError(t, svc.Remove(ctx, 1))
		assert.False(t, supplier.Active)
	})

	t.Run("fails for unknown id", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		svc := NewSupplierService(repo)
		ctx := context.Background()

		repo.On("FindActiveByID", mock.Anything, uint(1)).Return(nil, shared.ErrNotFound)

		err := svc.Remove(ctx, 1)
		assert.Equal(t, "Supplier not found with id: 1", err.Error())
	})
}
