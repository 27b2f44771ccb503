package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
// name, sku y warehouse_id son obligatorios; el resto es opcional.
type CreateProductRequest struct {
	Name              string           `json:"name" validate:"required,max=255"`
	SKU               string           `json:"sku" validate:"required,max=100"`
	WarehouseID       int64            `json:"warehouse_id" validate:"required,gt=0"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	InitialQuantity   *int             `json:"initial_quantity,omitempty" validate:"omitempty,min=0,max=2147483647"`
	SupplierID        *int64           `json:"supplier_id,omitempty" validate:"omitempty,gt=0"`
	IsBundle          bool             `json:"is_bundle"`
	LowStockThreshold *int             `json:"low_stock_threshold,omitempty" validate:"omitempty,min=0,max=2147483647"`
}

// CreateProductResponse salida de la creación de un producto.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}
