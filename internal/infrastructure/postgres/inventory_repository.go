package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-alertas/internal/domain"
	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta la fila de stock y completa ID y UpdatedAt.
// El UNIQUE (warehouse_id, product_id) se traduce a domain.ErrDuplicate.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (warehouse_id, product_id, quantity, low_stock_threshold)
		VALUES ($1, $2, $3, $4)
		RETURNING id, updated_at`
	err := r.q.QueryRow(ctx, query, inv.WarehouseID, inv.ProductID, inv.Quantity, inv.LowStockThreshold).
		Scan(&inv.ID, &inv.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert inventory: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// Get obtiene el stock de un producto en una bodega.
func (r *InventoryRepo) Get(ctx context.Context, warehouseID, productID int64) (*entity.Inventory, error) {
	query := `
		SELECT id, warehouse_id, product_id, quantity, low_stock_threshold, updated_at
		FROM inventory WHERE warehouse_id = $1 AND product_id = $2`
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, query, warehouseID, productID).Scan(
		&inv.ID, &inv.WarehouseID, &inv.ProductID, &inv.Quantity, &inv.LowStockThreshold, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}
