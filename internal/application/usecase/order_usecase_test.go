package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/order"
)

const testSupplierID = "5f0c2a9e-3b1d-4c6e-9a7f-2d8e1b4c6a01"

func newOrderFixture(mode order.NumberingMode, now time.Time) (*usecase.OrderUseCase, *fakeOrderRepo) {
	orders := newFakeOrderRepo()
	suppliers := newFakeSupplierRepo(&entity.Supplier{ID: testSupplierID, Name: "Acme"})
	uc := usecase.NewOrderUseCase(orders, &fakeTx{orders: orders}, suppliers, nil, nil, mode).
		WithClock(func() time.Time { return now })
	return uc, orders
}

func validOrder(total string) dto.OrderRequest {
	return dto.OrderRequest{SupplierID: testSupplierID, OrderDate: "2025-03-10", TotalAmount: total}
}

func TestOrderCreate_SequentialNumbers(t *testing.T) {
	ctx := context.Background()
	uc, _ := newOrderFixture(order.ModeContinuous, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	var numbers []string
	for i := 0; i < 3; i++ {
		o, err := uc.Create(ctx, "user-1", validOrder("100.50"))
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPending, o.Status)
		numbers = append(numbers, o.OrderNumber)
	}
	assert.Equal(t, []string{"PO-2025-001", "PO-2025-002", "PO-2025-003"}, numbers)

	next, err := uc.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PO-2025-004", next)
}

func TestOrderCreate_YearBoundary(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		mode order.NumberingMode
		want string
	}{
		{"continuo conserva la secuencia", order.ModeContinuous, "PO-2026-008"},
		{"reinicio anual", order.ModeYearlyReset, "PO-2026-001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, orders := newOrderFixture(tt.mode, time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC))
			require.NoError(t, orders.Create(ctx, &entity.Order{ID: "old", OrderNumber: "PO-2025-007", Status: entity.OrderStatusReceived}))

			o, err := uc.Create(ctx, "user-1", validOrder("10"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, o.OrderNumber)
		})
	}
}

func TestOrderCreate_Validation(t *testing.T) {
	ctx := context.Background()
	uc, orders := newOrderFixture(order.ModeContinuous, time.Now())

	tests := []struct {
		name  string
		in    dto.OrderRequest
		field string
	}{
		{"sin proveedor", dto.OrderRequest{TotalAmount: "10"}, "supplierId"},
		{"proveedor inexistente", dto.OrderRequest{SupplierID: "7c1e9b3a-2d4f-4e6a-8b0c-1a3d5f7e9b2c", TotalAmount: "10"}, "supplierId"},
		{"proveedor mal formado", dto.OrderRequest{SupplierID: "nope", TotalAmount: "10"}, "supplierId"},
		{"monto negativo", dto.OrderRequest{SupplierID: testSupplierID, TotalAmount: "-1"}, "totalAmount"},
		{"fecha mal formada", dto.OrderRequest{SupplierID: testSupplierID, TotalAmount: "1", OrderDate: "10/03/2025"}, "orderDate"},
		{"entrega antes de la orden", dto.OrderRequest{SupplierID: testSupplierID, TotalAmount: "1", OrderDate: "2025-03-10", ExpectedDeliveryDate: "2025-03-01"}, "expectedDeliveryDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, "user-1", tt.in)
			require.Error(t, err)
			ve, ok := domain.AsValidation(err)
			require.True(t, ok, "se esperaba ValidationError, got %v", err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
	assert.Empty(t, orders.items, "ninguna orden inválida debe persistirse")
}

func TestOrderUpdateStatus(t *testing.T) {
	ctx := context.Background()
	uc, _ := newOrderFixture(order.ModeContinuous, time.Now())
	o, err := uc.Create(ctx, "user-1", validOrder("250"))
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStatus(ctx, o.ID, dto.OrderStatusRequest{Status: entity.OrderStatusReceived}))

	got, err := uc.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.OrderStatusReceived, got.Status)

	// received es terminal
	err = uc.UpdateStatus(ctx, o.ID, dto.OrderStatusRequest{Status: entity.OrderStatusCancelled})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	err = uc.UpdateStatus(ctx, "missing", dto.OrderStatusRequest{Status: entity.OrderStatusCancelled})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.UpdateStatus(ctx, o.ID, dto.OrderStatusRequest{Status: entity.OrderStatusPending})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderStats_OnlyReceivedCountsTowardsValue(t *testing.T) {
	ctx := context.Background()
	uc, _ := newOrderFixture(order.ModeContinuous, time.Now())

	a, err := uc.Create(ctx, "u", validOrder("100.25"))
	require.NoError(t, err)
	b, err := uc.Create(ctx, "u", validOrder("50"))
	require.NoError(t, err)
	_, err = uc.Create(ctx, "u", validOrder("999"))
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStatus(ctx, a.ID, dto.OrderStatusRequest{Status: entity.OrderStatusReceived}))
	require.NoError(t, uc.UpdateStatus(ctx, b.ID, dto.OrderStatusRequest{Status: entity.OrderStatusReceived}))

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, "150.25", stats.TotalValue)

	pending, err := uc.ListByStatus(ctx, entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = uc.ListByStatus(ctx, "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdate_KeepsNumberAndStatus(t *testing.T) {
	ctx := context.Background()
	uc, orders := newOrderFixture(order.ModeContinuous, time.Now())
	o, err := uc.Create(ctx, "u", validOrder("10"))
	require.NoError(t, err)

	require.NoError(t, uc.Update(ctx, o.ID, validOrder("20.00")))
	stored := orders.items[o.ID]
	assert.Equal(t, o.OrderNumber, stored.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
	assert.Equal(t, "20", stored.TotalAmount.String())

	assert.ErrorIs(t, uc.Update(ctx, "missing", validOrder("1")), domain.ErrNotFound)
}

func TestOrder_IDMalFormadoEsAusencia(t *testing.T) {
	ctx := context.Background()
	uc, _ := newOrderFixture(order.ModeContinuous, time.Now())

	got, err := uc.GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, uc.Update(ctx, "abc", validOrder("1")), domain.ErrNotFound)
	assert.ErrorIs(t, uc.UpdateStatus(ctx, "abc", dto.OrderStatusRequest{Status: entity.OrderStatusReceived}), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "abc"), domain.ErrNotFound)
	// Mayúsculas y sin guiones no son la forma canónica de las rutas.
	assert.ErrorIs(t, uc.Delete(ctx, "5F0C2A9E3B1D4C6E9A7F2D8E1B4C6A01"), domain.ErrNotFound)
}

func TestOrderDocuments_WithoutRenderers(t *testing.T) {
	uc, _ := newOrderFixture(order.ModeContinuous, time.Now())
	_, _, err := uc.PDF(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, _, _, err = uc.XML(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
