package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/validation"
)

// RuleID regla de los identificadores recibidos en cuerpo o query.
const RuleID = "uuid"

// IsID true si raw es un UUID en forma canónica (36 caracteres con guiones), la única que
// aceptan las rutas. Un id que no lo es no puede existir: los GetByID lo tratan como ausente.
func IsID(raw string) bool {
	if len(raw) != 36 {
		return false
	}
	_, err := uuid.Parse(raw)
	return err == nil
}

// checkRefID valida un id de referencia que llega en el cuerpo o la query.
func checkRefID(field, raw string) error {
	if !IsID(raw) {
		return domain.NewValidationError(field, RuleID, field+" no es un identificador válido")
	}
	return nil
}

// parseIntOr convierte raw a entero; vacío devuelve def.
func parseIntOr(field, raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(field, validation.RuleQuantity, field+" debe ser un número entero")
	}
	return n, nil
}

// parseMoney convierte raw a decimal no negativo.
func parseMoney(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero, domain.NewValidationError(field, "amount", field+" debe ser un monto no negativo")
	}
	return d, nil
}

// parseDate interpreta yyyy-MM-dd; vacío devuelve nil.
func parseDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return nil, domain.NewValidationError(field, "date", field+" debe tener el formato yyyy-MM-dd")
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dto.DateLayout)
}

// money importes de reportes: siempre con 2 decimales.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
