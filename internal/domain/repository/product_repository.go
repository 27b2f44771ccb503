package repository

import (
	"context"

	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y asigna su ID. Devuelve domain.ErrDuplicate si el SKU ya existe.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetBySKU devuelve nil, nil si no existe.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
}
