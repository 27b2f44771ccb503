package entity

import "time"

// Sale es un hecho inmutable: unidades vendidas de un producto desde una bodega.
type Sale struct {
	ID           int64
	ProductID    int64
	WarehouseID  int64
	QuantitySold int
	SoldAt       time.Time
}
