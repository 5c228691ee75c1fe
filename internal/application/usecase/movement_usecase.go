package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/internal/domain/validation"
	"github.com/jhoicas/Inventario-stock/pkg/validator"
)

// MovementUseCase registra movimientos de stock y los aplica a la cantidad del producto
// en la misma transacción, con bloqueo de fila (SELECT FOR UPDATE).
type MovementUseCase struct {
	repo repository.StockMovementRepository
	tx   MovementTxRunner
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.StockMovementRepository, tx MovementTxRunner) *MovementUseCase {
	return &MovementUseCase{repo: repo, tx: tx}
}

// Register valida el movimiento, bloquea el producto, calcula el nuevo stock con el libro de
// inventario y guarda ambos. domain.ErrInsufficientStock si el stock quedaría negativo.
func (uc *MovementUseCase) Register(ctx context.Context, userID string, in dto.MovementRequest) (*dto.MovementResult, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	if err := checkRefID("productId", strings.TrimSpace(in.ProductID)); err != nil {
		return nil, err
	}
	qty, err := parseIntOr("quantity", in.Quantity, 0)
	if err != nil {
		return nil, err
	}
	if in.MovementType == entity.MovementTypeAdjustment {
		if qty == 0 {
			return nil, domain.NewValidationError("quantity", validation.RuleQuantity, "el ajuste debe ser distinto de cero")
		}
	} else if qty <= 0 {
		return nil, domain.NewValidationError("quantity", validation.RuleQuantity, "la cantidad debe ser mayor que cero")
	}

	mov := &entity.StockMovement{
		ID:              uuid.New().String(),
		ProductID:       strings.TrimSpace(in.ProductID),
		MovementType:    in.MovementType,
		Quantity:        qty,
		ReferenceNumber: strings.TrimSpace(in.ReferenceNumber),
		Notes:           strings.TrimSpace(in.Notes),
		UserID:          userID,
		CreatedAt:       time.Now(),
	}
	result := &dto.MovementResult{Success: true, Message: "movimiento registrado", MovementID: mov.ID}

	err = uc.tx.RunMovement(ctx, func(movements repository.StockMovementRepository, products repository.ProductRepository) error {
		p, err := products.LockForUpdate(ctx, mov.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		next, err := inventory.ApplyMovement(p.QuantityInStock, mov.MovementType, mov.Quantity)
		if err != nil {
			return err
		}
		if err := products.SetQuantity(ctx, p.ID, next); err != nil {
			return err
		}
		result.NewQuantity = next
		result.LowStock = inventory.IsLowStock(next, p.ReorderLevel)
		return movements.Create(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *MovementUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.MovementResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func (uc *MovementUseCase) ListByProduct(ctx context.Context, productID string) ([]dto.MovementResponse, error) {
	if ve := validation.Check("productId", validation.RuleRequired, productID); ve != nil {
		return nil, ve
	}
	if err := checkRefID("productId", productID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func toMovementResponses(list []*entity.StockMovementView) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			ID:              m.ID,
			ProductID:       m.ProductID,
			ProductName:     m.ProductName,
			ProductSKU:      m.ProductSKU,
			MovementType:    m.MovementType,
			Quantity:        m.Quantity,
			ReferenceNumber: m.ReferenceNumber,
			Notes:           m.Notes,
			UserID:          m.UserID,
			UserName:        m.UserName,
			CreatedAt:       m.CreatedAt,
		})
	}
	return out
}
