package repository

import (
	"context"

	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
)

// InventoryRepository define el puerto para las filas de stock por bodega+producto (DIP).
type InventoryRepository interface {
	// Create persiste la fila y asigna su ID. El par (bodega, producto) es único.
	Create(ctx context.Context, inv *entity.Inventory) error
	// Get devuelve nil, nil si no hay fila para el par.
	Get(ctx context.Context, warehouseID, productID int64) (*entity.Inventory, error)
}
