package repository

import (
	"context"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los Get devuelven (nil, nil) si no existe; Update y Delete devuelven domain.ErrNotFound.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
	CountProducts(ctx context.Context, categoryID string) (int, error)
}
