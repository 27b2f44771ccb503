package entity

// Supplier representa un proveedor de una empresa. Un producto puede no tener proveedor.
type Supplier struct {
	ID           int64
	CompanyID    int64
	Name         string
	ContactEmail *string
	Phone        *string
}
