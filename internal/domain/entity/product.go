package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de una empresa. El SKU es único en todo el sistema,
// no por empresa. El stock se maneja por bodega en Inventory.
type Product struct {
	ID         int64
	CompanyID  int64
	SupplierID *int64 // nil = sin proveedor
	SKU        string
	Name       string
	Price      decimal.Decimal // NUMERIC(10,2), 0.00 por defecto
	IsBundle   bool
	CreatedAt  time.Time
}
