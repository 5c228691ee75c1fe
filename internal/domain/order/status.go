package order

import "github.com/jhoicas/Inventario-stock/internal/domain/entity"

// transitions estados destino permitidos desde cada estado.
// received y cancelled son terminales.
var transitions = map[string][]string{
	entity.OrderStatusPending: {entity.OrderStatusReceived, entity.OrderStatusCancelled},
}

// IsValidStatus indica si s es un estado conocido.
func IsValidStatus(s string) bool {
	switch s {
	case entity.OrderStatusPending, entity.OrderStatusReceived, entity.OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal true para received y cancelled.
func IsTerminal(s string) bool {
	return s == entity.OrderStatusReceived || s == entity.OrderStatusCancelled
}

// CanTransition indica si se permite pasar de from a to.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// SourceStatesFor estados desde los que se puede llegar a to; lo usa el UPDATE condicional.
func SourceStatesFor(to string) []string {
	var out []string
	for from, targets := range transitions {
		for _, t := range targets {
			if t == to {
				out = append(out, from)
			}
		}
	}
	return out
}
