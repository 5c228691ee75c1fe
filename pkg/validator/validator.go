// Package validator valida DTOs de forma declarativa con go-playground/validator,
// registrando como tags las reglas del servicio de validación del dominio.
package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/validation"
)

// tagRules tag de struct → regla del dominio.
var tagRules = map[string]string{
	"sku":       validation.RuleSKU,
	"username":  validation.RuleUsername,
	"phone":     validation.RulePhone,
	"strongpwd": validation.RulePassword,
	"price":     validation.RulePrice,
	"quantity":  validation.RuleQuantity,
	"emailfmt":  validation.RuleEmail,
	"notblank":  validation.RuleRequired,
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	for tag, rule := range tagRules {
		pred, ok := validation.Predicate(rule)
		if !ok {
			continue
		}
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			if fl.Field().Kind() != reflect.String {
				return false
			}
			return pred(fl.Field().String())
		})
	}
	return v
}

// fieldName usa el nombre de form (o json) para que el mensaje hable en términos del cliente.
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// Struct valida s y devuelve el primer fallo como *domain.ValidationError (o nil).
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("", "", err.Error())
	}
	fe := verrs[0]
	rule, ok := tagRules[fe.Tag()]
	switch {
	case ok:
	case fe.Tag() == "required":
		rule = validation.RuleRequired
	case fe.Tag() == "oneof":
		return domain.NewValidationError(fe.Field(), fe.Tag(), fe.Field()+" debe ser uno de: "+fe.Param())
	default:
		rule = fe.Tag()
	}
	return domain.NewValidationError(fe.Field(), rule, validation.Message(fe.Field(), rule))
}
