package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/order"
)

func date(year int) time.Time {
	return time.Date(year, time.March, 15, 10, 0, 0, 0, time.UTC)
}

func TestNextNumber_IncrementaSecuencia(t *testing.T) {
	got, err := order.NextNumber("PO-2024-007", date(2024), order.ModeContinuous)
	require.NoError(t, err)
	assert.Equal(t, "PO-2024-008", got)
}

func TestNextNumber_SinOrdenesPrevias(t *testing.T) {
	got, err := order.NextNumber("", date(2025), order.ModeContinuous)
	require.NoError(t, err)
	assert.Equal(t, "PO-2025-001", got)
}

func TestNextNumber_CambioDeAnioContinuo(t *testing.T) {
	// Comportamiento histórico: la secuencia no se reinicia con el año.
	got, err := order.NextNumber("PO-2024-041", date(2025), order.ModeContinuous)
	require.NoError(t, err)
	assert.Equal(t, "PO-2025-042", got)
}

func TestNextNumber_CambioDeAnioConReinicio(t *testing.T) {
	got, err := order.NextNumber("PO-2024-041", date(2025), order.ModeYearlyReset)
	require.NoError(t, err)
	assert.Equal(t, "PO-2025-001", got)

	got, err = order.NextNumber("PO-2025-009", date(2025), order.ModeYearlyReset)
	require.NoError(t, err)
	assert.Equal(t, "PO-2025-010", got)
}

func TestNextNumber_MasDeTresDigitos(t *testing.T) {
	got, err := order.NextNumber("PO-2024-999", date(2024), order.ModeContinuous)
	require.NoError(t, err)
	assert.Equal(t, "PO-2024-1000", got)
}

func TestNextNumber_Malformado(t *testing.T) {
	for _, last := range []string{"PO-2024", "XX-2024-001", "PO-abcd-001", "PO-2024-x1"} {
		_, err := order.NextNumber(last, date(2024), order.ModeContinuous)
		assert.ErrorIs(t, err, order.ErrMalformedNumber, last)
	}
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, order.ModeYearlyReset, order.ParseMode("YEARLY"))
	assert.Equal(t, order.ModeContinuous, order.ParseMode(""))
	assert.Equal(t, order.ModeContinuous, order.ParseMode("otro"))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, order.CanTransition(entity.OrderStatusPending, entity.OrderStatusReceived))
	assert.True(t, order.CanTransition(entity.OrderStatusPending, entity.OrderStatusCancelled))

	assert.False(t, order.CanTransition(entity.OrderStatusPending, entity.OrderStatusPending))
	assert.False(t, order.CanTransition(entity.OrderStatusReceived, entity.OrderStatusPending))
	assert.False(t, order.CanTransition(entity.OrderStatusReceived, entity.OrderStatusCancelled))
	assert.False(t, order.CanTransition(entity.OrderStatusCancelled, entity.OrderStatusReceived))
	assert.False(t, order.CanTransition(entity.OrderStatusCancelled, entity.OrderStatusPending))
}

func TestSourceStatesFor(t *testing.T) {
	assert.Equal(t, []string{entity.OrderStatusPending}, order.SourceStatesFor(entity.OrderStatusReceived))
	assert.Empty(t, order.SourceStatesFor(entity.OrderStatusPending))
}
