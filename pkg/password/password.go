// Package password hashea y verifica contraseñas con bcrypt y genera contraseñas temporales.
package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/validation"
)

// DefaultCost factor de trabajo de bcrypt usado si no se configura otro.
const DefaultCost = 12

// TemporaryLength longitud de las contraseñas temporales.
const TemporaryLength = 8

const temporaryAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%"

// ErrEmptyPassword se rechaza la contraseña vacía antes de hashear.
var ErrEmptyPassword = errors.New("password: contraseña vacía")

// Hasher encapsula el factor de trabajo configurado.
type Hasher struct {
	cost int
}

// NewHasher construye un Hasher. Un cost fuera del rango de bcrypt usa DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Cost devuelve el factor de trabajo actual.
func (h *Hasher) Cost() int { return h.cost }

// Hash genera un hash bcrypt con sal aleatoria nueva en cada llamada. Más de 72 bytes
// devuelve un *domain.ValidationError sobre el campo password.
func (h *Hasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	if len(plain) > validation.MaxPasswordBytes {
		return "", errTooLong()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", errTooLong()
		}
		return "", fmt.Errorf("password: hashear: %w", err)
	}
	return string(hash), nil
}

func errTooLong() error {
	return domain.NewValidationError("password", validation.RulePassword,
		validation.Message("password", validation.RulePassword))
}

// Verify compara plain contra el hash almacenado. Devuelve false ante hash malformado.
func (h *Hasher) Verify(plain, stored string) bool {
	if plain == "" || stored == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// NeedsRehash true si el cost embebido difiere del configurado o el hash no es legible.
func (h *Hasher) NeedsRehash(stored string) bool {
	cost, err := bcrypt.Cost([]byte(stored))
	if err != nil {
		return true
	}
	return cost != h.cost
}

var defaultHasher = NewHasher(DefaultCost)

// Hash usa el cost por defecto.
func Hash(plain string) (string, error) { return defaultHasher.Hash(plain) }

// Verify usa el cost por defecto.
func Verify(plain, stored string) bool { return defaultHasher.Verify(plain, stored) }

// NeedsRehash usa el cost por defecto.
func NeedsRehash(stored string) bool { return defaultHasher.NeedsRehash(stored) }

// GenerateTemporaryPassword devuelve 8 caracteres elegidos uniformemente del alfabeto
// alfanumérico más !@#$%.
func GenerateTemporaryPassword() (string, error) {
	max := big.NewInt(int64(len(temporaryAlphabet)))
	buf := make([]byte, TemporaryLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("password: generar temporal: %w", err)
		}
		buf[i] = temporaryAlphabet[n.Int64()]
	}
	return string(buf), nil
}
