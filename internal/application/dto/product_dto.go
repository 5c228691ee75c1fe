package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest alta o corrección completa de un producto. Los numéricos llegan como
// texto (formulario plano) y se validan antes de convertirse.
type ProductRequest struct {
	Name            string `json:"name" form:"name" validate:"notblank,max=200"`
	SKU             string `json:"sku" form:"sku" validate:"sku"`
	CategoryID      string `json:"categoryId" form:"categoryId"`
	SupplierID      string `json:"supplierId" form:"supplierId"`
	Description     string `json:"description" form:"description"`
	UnitPrice       string `json:"unitPrice" form:"unitPrice" validate:"price"`
	QuantityInStock string `json:"quantityInStock" form:"quantityInStock" validate:"omitempty,quantity"`
	ReorderLevel    string `json:"reorderLevel" form:"reorderLevel" validate:"omitempty,quantity"`
	ImageURL        string `json:"imageUrl" form:"imageUrl" validate:"omitempty,url"`
}

// ProductResponse salida de un producto con los campos derivados del libro de inventario.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	CategoryID      string          `json:"categoryId"`
	CategoryName    string          `json:"categoryName"`
	SupplierID      string          `json:"supplierId"`
	SupplierName    string          `json:"supplierName"`
	Description     string          `json:"description"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	QuantityInStock int             `json:"quantityInStock"`
	ReorderLevel    int             `json:"reorderLevel"`
	ImageURL        string          `json:"imageUrl"`
	StockStatus     string          `json:"stockStatus"`
	LowStock        bool            `json:"lowStock"`
	StockValue      decimal.Decimal `json:"stockValue"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ProductStatsResponse totales del inventario; totalValue con 2 decimales.
type ProductStatsResponse struct {
	TotalProducts int    `json:"totalProducts"`
	TotalValue    string `json:"totalValue"`
}
