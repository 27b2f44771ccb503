package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
)

// LowStockCandidate resultado crudo del repositorio: una fila de inventario en o bajo su umbral,
// con su producto, su bodega, el proveedor opcional y las unidades vendidas desde el corte.
type LowStockCandidate struct {
	Inventory   entity.Inventory
	Product     entity.Product
	Warehouse   entity.Warehouse
	Supplier    *entity.Supplier // nil = producto sin proveedor
	RecentSales int64
}

// StockAlertRepository consultas de solo lectura para alertas de stock bajo.
type StockAlertRepository interface {
	// ListLowStockCandidates devuelve las filas de inventario de las bodegas de la empresa con
	// quantity <= low_stock_threshold, sumando quantity_sold de ventas con sold_at >= since
	// para el mismo producto y bodega (0 si no hay). Orden: bodega, producto.
	ListLowStockCandidates(ctx context.Context, companyID int64, since time.Time) ([]LowStockCandidate, error)
}
