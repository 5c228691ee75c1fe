package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		qty, reorder int
		want         inventory.StockStatus
	}{
		{0, 10, inventory.StatusOutOfStock},
		{0, 0, inventory.StatusOutOfStock},
		{5, 10, inventory.StatusLowStock},
		{10, 10, inventory.StatusLowStock},
		{15, 10, inventory.StatusInStock},
		{1, 0, inventory.StatusInStock},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, inventory.Status(tc.qty, tc.reorder), "qty=%d reorder=%d", tc.qty, tc.reorder)
	}
}

func TestIsLowStock_CoincideConStatus(t *testing.T) {
	for qty := 0; qty <= 20; qty++ {
		low := inventory.IsLowStock(qty, 10)
		status := inventory.Status(qty, 10)
		assert.Equal(t, low, status != inventory.StatusInStock, "qty=%d", qty)
	}
}

func TestStockValue_SinErrorDeRedondeo(t *testing.T) {
	price := decimal.RequireFromString("19.99")
	got := inventory.StockValue(price, 3)
	assert.True(t, got.Equal(decimal.RequireFromString("59.97")), "got %s", got)
	assert.Equal(t, "59.97", got.StringFixed(2))
}

func TestTotalValue(t *testing.T) {
	products := []entity.Product{
		{UnitPrice: decimal.RequireFromString("19.99"), QuantityInStock: 3},
		{UnitPrice: decimal.RequireFromString("0.10"), QuantityInStock: 3},
		{UnitPrice: decimal.RequireFromString("5"), QuantityInStock: 0},
	}
	assert.True(t, inventory.TotalValue(products).Equal(decimal.RequireFromString("60.27")))
	assert.True(t, inventory.TotalValue(nil).IsZero())
}

func TestLowStock_OrdenAscendentePorCantidad(t *testing.T) {
	products := []entity.Product{
		{ID: "a", QuantityInStock: 2, ReorderLevel: 5},
		{ID: "b", QuantityInStock: 10, ReorderLevel: 5},
		{ID: "c", QuantityInStock: 0, ReorderLevel: 1},
	}
	low := inventory.LowStock(products)
	require.Len(t, low, 2)
	assert.Equal(t, "c", low[0].ID)
	assert.Equal(t, "a", low[1].ID)
}

func TestApplyMovement(t *testing.T) {
	next, err := inventory.ApplyMovement(5, entity.MovementTypeIn, 3)
	require.NoError(t, err)
	assert.Equal(t, 8, next)

	next, err = inventory.ApplyMovement(5, entity.MovementTypeOut, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	_, err = inventory.ApplyMovement(5, entity.MovementTypeOut, 6)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	next, err = inventory.ApplyMovement(5, entity.MovementTypeAdjustment, -2)
	require.NoError(t, err)
	assert.Equal(t, 3, next)

	_, err = inventory.ApplyMovement(5, entity.MovementTypeAdjustment, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.ApplyMovement(5, entity.MovementTypeIn, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.ApplyMovement(5, "transfer", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
