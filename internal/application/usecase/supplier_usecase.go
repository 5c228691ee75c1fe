package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/pkg/validator"
)

// SupplierUseCase casos de uso CRUD y búsqueda de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (string, error) {
	if err := validator.Struct(in); err != nil {
		return "", err
	}
	s := supplierFromRequest(uuid.New().String(), in)
	s.CreatedAt = time.Now()
	if err := uc.repo.Create(ctx, s); err != nil {
		return "", err
	}
	return s.ID, nil
}

// GetByID devuelve el proveedor con su número de productos, o nil si no existe.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	if !IsID(id) {
		return nil, nil
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	count, err := uc.repo.CountProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toSupplierResponse(s)
	resp.ProductCount = count
	return &resp, nil
}

func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(list), nil
}

// Search por nombre o contacto; keyword vacío equivale a List.
func (uc *SupplierUseCase) Search(ctx context.Context, keyword string) ([]dto.SupplierResponse, error) {
	if strings.TrimSpace(keyword) == "" {
		return uc.List(ctx)
	}
	list, err := uc.repo.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(list), nil
}

func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.SupplierRequest) error {
	if !IsID(id) {
		return domain.ErrNotFound
	}
	if err := validator.Struct(in); err != nil {
		return err
	}
	return uc.repo.Update(ctx, supplierFromRequest(id, in))
}

func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	if !IsID(id) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func supplierFromRequest(id string, in dto.SupplierRequest) *entity.Supplier {
	return &entity.Supplier{
		ID:            id,
		Name:          strings.TrimSpace(in.Name),
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Address:       strings.TrimSpace(in.Address),
	}
}

func toSupplierResponses(list []*entity.Supplier) []dto.SupplierResponse {
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSupplierResponse(s))
	}
	return out
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		CreatedAt:     formatDate(&s.CreatedAt),
	}
}
