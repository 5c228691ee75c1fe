// Package order contiene la numeración de órdenes de compra y la máquina de estados
// de su ciclo de vida. Sin I/O: la serialización concurrente la garantiza PostgreSQL.
package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Prefix prefijo fijo de los números de orden.
const Prefix = "PO"

// ErrMalformedNumber el último número emitido no tiene la forma PO-<año>-<seq>.
var ErrMalformedNumber = errors.New("número de orden con formato inválido")

// NumberingMode controla qué pasa con la secuencia al cambiar de año.
type NumberingMode string

const (
	// ModeContinuous incrementa la secuencia del último número emitido sin importar su año
	// (PO-2024-007 emitido en 2025 → PO-2025-008). Es el comportamiento histórico y el default.
	ModeContinuous NumberingMode = "continuous"
	// ModeYearlyReset reinicia la secuencia en 001 cuando el año del último número
	// no coincide con el año actual. Opt-in.
	ModeYearlyReset NumberingMode = "yearly"
)

// ParseMode interpreta el valor de configuración; vacío o desconocido → ModeContinuous.
func ParseMode(s string) NumberingMode {
	if NumberingMode(strings.ToLower(strings.TrimSpace(s))) == ModeYearlyReset {
		return ModeYearlyReset
	}
	return ModeContinuous
}

// FormatNumber renderiza PO-<año>-<seq> con la secuencia rellenada a 3 dígitos.
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", Prefix, year, seq)
}

// ParseNumber descompone PO-<año>-<seq>.
func ParseNumber(s string) (year, seq int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 || parts[0] != Prefix {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil || year <= 0 {
		return 0, 0, fmt.Errorf("%w: año en %q", ErrMalformedNumber, s)
	}
	seq, err = strconv.Atoi(parts[2])
	if err != nil || seq < 0 {
		return 0, 0, fmt.Errorf("%w: secuencia en %q", ErrMalformedNumber, s)
	}
	return year, seq, nil
}

// NextNumber calcula el siguiente número a partir del último emitido (vacío si no hay órdenes).
// El año siempre es el de now.
func NextNumber(last string, now time.Time, mode NumberingMode) (string, error) {
	year := now.Year()
	if strings.TrimSpace(last) == "" {
		return FormatNumber(year, 1), nil
	}
	lastYear, seq, err := ParseNumber(last)
	if err != nil {
		return "", err
	}
	if mode == ModeYearlyReset && lastYear != year {
		return FormatNumber(year, 1), nil
	}
	return FormatNumber(year, seq+1), nil
}

// YearPrefix prefijo de búsqueda de números de un año (PO-2025-).
func YearPrefix(year int) string {
	return fmt.Sprintf("%s-%d-", Prefix, year)
}
