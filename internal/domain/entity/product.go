package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. QuantityInStock solo cambia vía
// movimientos de stock o corrección completa del registro.
type Product struct {
	ID              string          `db:"id"`
	Name            string          `db:"name"`
	SKU             string          `db:"sku"` // formato AAAA-###, único
	CategoryID      string          `db:"category_id"`
	SupplierID      string          `db:"supplier_id"`
	Description     string          `db:"description"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	QuantityInStock int             `db:"quantity_in_stock"`
	ReorderLevel    int             `db:"reorder_level"`
	ImageURL        string          `db:"image_url"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// ProductView proyección de lectura: el producto más los nombres de categoría y proveedor
// obtenidos por JOIN. No se usa nunca como entrada de una escritura.
type ProductView struct {
	Product
	CategoryName string `db:"category_name"`
	SupplierName string `db:"supplier_name"`
}
