package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/ident"
)

// SupplierUseCase CRUD del directorio de proveedores. Sin invariantes de
// negocio más allá de la unicidad del ID.
type SupplierUseCase struct {
	suppliers repository.SupplierStore
	locks     repository.Locker
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierStore, locks repository.Locker) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, locks: locks}
}

// List devuelve todos los proveedores.
func (uc *SupplierUseCase) List(ctx context.Context) ([]entity.Supplier, error) {
	return uc.suppliers.Snapshot(ctx)
}

// Create registra un proveedor nuevo con ID secuencial SUP-nnn.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	release, err := uc.locks.Acquire(ctx, repository.CollectionSuppliers)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := uc.suppliers.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	s := entity.Supplier{
		ID:         ident.Sequential("SUP", len(existing)),
		Name:       in.Name,
		Contact:    in.Contact,
		Phone:      in.Phone,
		Address:    in.Address,
		Attributes: in.Attributes,
	}
	if err := uc.suppliers.Replace(ctx, append(existing, s)); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateByID fusiona los campos presentes sobre el proveedor con ese ID.
func (uc *SupplierUseCase) UpdateByID(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*entity.Supplier, error) {
	release, err := uc.locks.Acquire(ctx, repository.CollectionSuppliers)
	if err != nil {
		return nil, err
	}
	defer release()

	suppliers, err := uc.suppliers.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range suppliers {
		if suppliers[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrNotFound
	}

	s := suppliers[idx]
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Contact != nil {
		s.Contact = *in.Contact
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if len(in.Attributes) > 0 {
		s.Attributes = in.Attributes
	}
	suppliers[idx] = s
	if err := uc.suppliers.Replace(ctx, suppliers); err != nil {
		return nil, err
	}
	return &s, nil
}
