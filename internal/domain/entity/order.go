package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	OrderStatusPending   = "pending"
	OrderStatusReceived  = "received"
	OrderStatusCancelled = "cancelled"
)

// Order representa una orden de compra a un proveedor.
type Order struct {
	ID                   string          `db:"id"`
	OrderNumber          string          `db:"order_number"` // PO-<año>-<seq>, único
	SupplierID           string          `db:"supplier_id"`
	OrderDate            time.Time       `db:"order_date"`
	ExpectedDeliveryDate *time.Time      `db:"expected_delivery_date"`
	Status               string          `db:"status"`
	TotalAmount          decimal.Decimal `db:"total_amount"`
	UserID               string          `db:"user_id"`
	CreatedAt            time.Time       `db:"created_at"`
}

// OrderView proyección de lectura con nombres de proveedor y usuario.
type OrderView struct {
	Order
	SupplierName string `db:"supplier_name"`
	UserName     string `db:"user_name"`
}
