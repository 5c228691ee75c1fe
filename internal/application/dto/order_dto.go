package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest alta o corrección completa de una orden de compra. El estado no se
// corrige por aquí: solo cambia mediante transiciones.
type OrderRequest struct {
	SupplierID           string `json:"supplierId" form:"supplierId" validate:"notblank"`
	OrderDate            string `json:"orderDate" form:"orderDate" validate:"omitempty,datetime=2006-01-02"`
	ExpectedDeliveryDate string `json:"expectedDeliveryDate" form:"expectedDeliveryDate" validate:"omitempty,datetime=2006-01-02"`
	TotalAmount          string `json:"totalAmount" form:"totalAmount" validate:"notblank,numeric"`
}

// OrderStatusRequest transición de estado (pending → received | cancelled).
type OrderStatusRequest struct {
	Status string `query:"status" form:"status" json:"status" validate:"required,oneof=received cancelled"`
}

// OrderResponse salida de una orden con los nombres de proveedor y usuario.
type OrderResponse struct {
	ID                   string          `json:"id"`
	OrderNumber          string          `json:"orderNumber"`
	SupplierID           string          `json:"supplierId"`
	SupplierName         string          `json:"supplierName"`
	OrderDate            string          `json:"orderDate"`
	ExpectedDeliveryDate string          `json:"expectedDeliveryDate,omitempty"`
	Status               string          `json:"status"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	UserID               string          `json:"userId"`
	UserName             string          `json:"userName"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// OrderStatsResponse número de órdenes y valor recibido; totalValue con 2 decimales.
type OrderStatsResponse struct {
	TotalOrders int    `json:"totalOrders"`
	TotalValue  string `json:"totalValue"`
}

// NextOrderNumberResponse vista previa del próximo número (no lo reserva).
type NextOrderNumberResponse struct {
	OrderNumber string `json:"orderNumber"`
}
