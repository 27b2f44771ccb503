package entity

import "time"

// DefaultLowStockThreshold umbral de stock bajo cuando no se configura otro.
const DefaultLowStockThreshold = 10

// Inventory representa el stock de un producto en una bodega.
// Existe a lo sumo una fila por par (bodega, producto).
type Inventory struct {
	ID                int64
	WarehouseID       int64
	ProductID         int64
	Quantity          int
	LowStockThreshold int
	UpdatedAt         time.Time
}

// IsLow indica si la cantidad está en o por debajo del umbral configurado.
func (i Inventory) IsLow() bool {
	return i.Quantity <= i.LowStockThreshold
}
