package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/dstore/dsms-api/internal/application/dto"
	"github.com/dstore/dsms-api/internal/domain"
	"github.com/dstore/dsms-api/internal/domain/entity"
	"github.com/dstore/dsms-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create registra un proveedor. Email único; status vacío → active.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	existing, _ := uc.repo.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	status := in.Status
	if status == "" {
		status = entity.SupplierStatusActive
	}
	if status != entity.SupplierStatusActive && status != entity.SupplierStatusInactive {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Address:    in.Address,
		Email:      in.Email,
		Contact:    in.Contact,
		Status:     status,
		CategoryID: in.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.Email != nil && *in.Email != supplier.Email {
		existing, _ := uc.repo.GetByEmail(ctx, *in.Email)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		supplier.Email = *in.Email
	}
	if in.Contact != nil {
		supplier.Contact = *in.Contact
	}
	if in.Status != nil {
		if *in.Status != entity.SupplierStatusActive && *in.Status != entity.SupplierStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		supplier.Status = *in.Status
	}
	if in.CategoryID != nil {
		supplier.CategoryID = *in.CategoryID
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un proveedor por ID.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:         s.ID,
		Name:       s.Name,
		Address:    s.Address,
		Email:      s.Email,
		Contact:    s.Contact,
		Status:     s.Status,
		CategoryID: s.CategoryID,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
