package entity

import "time"

// Warehouse representa una bodega de una empresa donde se almacena inventario (multi-bodega).
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	Location  *string // opcional
	CreatedAt time.Time
}
