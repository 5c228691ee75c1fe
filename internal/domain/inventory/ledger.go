// Package inventory implementa el libro de inventario: estado de stock, valorización y
// detección de bajo stock. Funciones puras sobre instantáneas de producto, sin I/O.
package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// StockStatus estado derivado de la cantidad frente al nivel de reorden.
type StockStatus string

const (
	StatusOutOfStock StockStatus = "OutOfStock"
	StatusLowStock   StockStatus = "LowStock"
	StatusInStock    StockStatus = "InStock"
)

// Status OutOfStock si qty == 0; LowStock si qty <= reorderLevel; InStock en otro caso.
func Status(qty, reorderLevel int) StockStatus {
	switch {
	case qty <= 0:
		return StatusOutOfStock
	case qty <= reorderLevel:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// IsLowStock qty <= reorderLevel (incluye agotados).
func IsLowStock(qty, reorderLevel int) bool {
	return qty <= reorderLevel
}

// StockValue unitPrice × qty en aritmética decimal exacta.
func StockValue(unitPrice decimal.Decimal, qty int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

// ProductStockValue atajo sobre un producto.
func ProductStockValue(p entity.Product) decimal.Decimal {
	return StockValue(p.UnitPrice, p.QuantityInStock)
}

// TotalValue Σ StockValue de todos los productos. Debe coincidir con
// SUM(unit_price * quantity_in_stock) calculado en la base de datos.
func TotalValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(ProductStockValue(p))
	}
	return total
}

// LowStock productos agotados o en bajo stock, ordenados por cantidad ascendente
// (el más agotado primero). El orden es parte del contrato para la priorización de reorden.
func LowStock(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if Status(p.QuantityInStock, p.ReorderLevel) != StatusInStock {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].QuantityInStock < out[j].QuantityInStock
	})
	return out
}

// ApplyMovement devuelve la nueva cantidad en stock tras aplicar un movimiento.
//   - in: suma quantity (> 0)
//   - out: resta quantity (> 0); ErrInsufficientStock si el stock quedaría negativo
//   - adjustment: suma el delta con signo (≠ 0), con la misma restricción de no negatividad
func ApplyMovement(current int, movementType string, quantity int) (int, error) {
	var next int
	switch movementType {
	case entity.MovementTypeIn:
		if quantity <= 0 {
			return current, domain.ErrInvalidInput
		}
		next = current + quantity
	case entity.MovementTypeOut:
		if quantity <= 0 {
			return current, domain.ErrInvalidInput
		}
		next = current - quantity
	case entity.MovementTypeAdjustment:
		if quantity == 0 {
			return current, domain.ErrInvalidInput
		}
		next = current + quantity
	default:
		return current, domain.ErrInvalidInput
	}
	if next < 0 {
		return current, domain.ErrInsufficientStock
	}
	return next, nil
}

// StockDelta cambio con signo que un movimiento produce en el stock.
func StockDelta(movementType string, quantity int) int {
	if movementType == entity.MovementTypeOut {
		return -quantity
	}
	return quantity
}
