package entity

import "time"

// Company representa una organización/tenant del sistema (multi-tenant).
// Es dueña de sus bodegas, proveedores y productos: al eliminarla se eliminan en cascada.
type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
