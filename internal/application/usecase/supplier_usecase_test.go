package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/infrastructure/lock"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memstore"
)

func newSuppliers(t *testing.T) (*usecase.SupplierUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	return usecase.NewSupplierUseCase(store.Suppliers, lock.NewManager(time.Second)), store
}

func TestSupplierCreate_AsignaIDSecuencial(t *testing.T) {
	uc, _ := newSuppliers(t)
	ctx := context.Background()

	s1, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Ferretería Central", Contact: "ventas@central.co"})
	require.NoError(t, err)
	assert.Equal(t, "SUP-001", s1.ID)

	s2, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Distribuidora Norte"})
	require.NoError(t, err)
	assert.Equal(t, "SUP-002", s2.ID)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestSupplierUpdate_FusionParcial(t *testing.T) {
	uc, _ := newSuppliers(t)
	ctx := context.Background()
	s, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Ferretería Central", Phone: "601-555-0101"})
	require.NoError(t, err)

	phone := "601-555-0202"
	out, err := uc.UpdateByID(ctx, s.ID, dto.UpdateSupplierRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "601-555-0202", out.Phone)
	assert.Equal(t, "Ferretería Central", out.Name, "los campos ausentes no se tocan")
}

func TestSupplierUpdate_NoEncontrado(t *testing.T) {
	uc, _ := newSuppliers(t)
	name := "X"
	_, err := uc.UpdateByID(context.Background(), "SUP-404", dto.UpdateSupplierRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
