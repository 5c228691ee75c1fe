// Package validation contiene las reglas de formato que se aplican a los campos de entrada
// antes de llegar a persistencia. Son predicados puros sobre strings: nunca fallan con
// panic ante entradas malformadas y tratan el vacío como inválido.
//
// La unicidad (username, SKU, número de orden) no se valida aquí; la garantiza la base
// de datos mediante constraints únicos.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/domain"
)

// Reglas soportadas.
const (
	RuleRequired = "required"
	RuleEmail    = "email"
	RulePhone    = "phone"
	RuleUsername = "username"
	RuleSKU      = "sku"
	RulePassword = "password"
	RulePrice    = "price"
	RuleQuantity = "quantity"
)

var (
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	phonePattern    = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,9}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	skuPattern      = regexp.MustCompile(`^[A-Z]{4}-[0-9]{3}$`)
)

const (
	minPasswordLength = 6
	// MaxPasswordBytes límite de bcrypt; lo que sigue no entra en el hash.
	MaxPasswordBytes = 72
)

// IsNotBlank true si s tiene algún carácter distinto de espacio.
func IsNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidEmail valida la forma local@dominio.
func IsValidEmail(s string) bool {
	return matchTrimmed(emailPattern, s)
}

// IsValidPhone acepta formatos internacionales tolerantes: +57 (300) 123-4567, 555.123.4567...
func IsValidPhone(s string) bool {
	return matchTrimmed(phonePattern, s)
}

// IsValidUsername 3–20 caracteres alfanuméricos o guion bajo.
func IsValidUsername(s string) bool {
	return matchTrimmed(usernamePattern, s)
}

// IsValidSKU exactamente 4 mayúsculas, guion y 3 dígitos (AAAA-###).
func IsValidSKU(s string) bool {
	return matchTrimmed(skuPattern, s)
}

// IsValidPassword al menos 6 caracteres con una letra y un dígito, y como mucho 72 bytes.
func IsValidPassword(s string) bool {
	if len([]rune(s)) < minPasswordLength || len(s) > MaxPasswordBytes {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// IsValidPrice el valor debe ser un número decimal estrictamente positivo.
func IsValidPrice(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// IsValidQuantity el valor debe ser un entero >= 0.
func IsValidQuantity(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= 0
}

func matchTrimmed(re *regexp.Regexp, s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return re.MatchString(s)
}

// predicates asocia cada regla con su predicado.
var predicates = map[string]func(string) bool{
	RuleRequired: IsNotBlank,
	RuleEmail:    IsValidEmail,
	RulePhone:    IsValidPhone,
	RuleUsername: IsValidUsername,
	RuleSKU:      IsValidSKU,
	RulePassword: IsValidPassword,
	RulePrice:    IsValidPrice,
	RuleQuantity: IsValidQuantity,
}

// Predicate devuelve el predicado de una regla conocida.
func Predicate(rule string) (func(string) bool, bool) {
	p, ok := predicates[rule]
	return p, ok
}

// Message mensaje estandarizado para un campo y regla.
func Message(field, rule string) string {
	switch rule {
	case RuleRequired:
		return field + " es requerido"
	case RuleEmail:
		return "formato de email inválido"
	case RulePhone:
		return "formato de teléfono inválido"
	case RuleUsername:
		return "el usuario debe tener 3-20 caracteres alfanuméricos o guion bajo"
	case RulePassword:
		return "la contraseña debe tener entre 6 caracteres y 72 bytes, con letras y números"
	case RulePrice:
		return "el precio debe ser un número positivo"
	case RuleQuantity:
		return "la cantidad debe ser un entero no negativo"
	case RuleSKU:
		return "el SKU debe tener el formato XXXX-###"
	default:
		return field + " inválido"
	}
}

// Check aplica la regla a value. Devuelve nil si es válido o un *domain.ValidationError.
// Una regla desconocida se trata como inválida.
func Check(field, rule, value string) *domain.ValidationError {
	p, ok := predicates[rule]
	if ok && p(value) {
		return nil
	}
	return domain.NewValidationError(field, rule, Message(field, rule))
}

// Field par campo/regla/valor para validar en bloque.
type Field struct {
	Name  string
	Rule  string
	Value string
}

// First valida los campos en orden y devuelve el primer error (o nil).
func First(fields ...Field) error {
	for _, f := range fields {
		if ve := Check(f.Name, f.Rule, f.Value); ve != nil {
			return ve
		}
	}
	return nil
}
