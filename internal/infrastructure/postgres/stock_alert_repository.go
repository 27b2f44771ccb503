package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
)

var _ repository.StockAlertRepository = (*StockAlertRepo)(nil)

// StockAlertRepo consultas de solo lectura para alertas de stock bajo.
type StockAlertRepo struct {
	q Querier
}

// NewStockAlertRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockAlertRepository(q Querier) *StockAlertRepo {
	return &StockAlertRepo{q: q}
}

// ListLowStockCandidates une inventario, bodega y producto (INNER) con el proveedor (LEFT)
// y la suma de ventas recientes por producto+bodega (LEFT, 0 si no hay ventas).
// Solo devuelve filas con quantity <= low_stock_threshold de bodegas de la empresa.
func (r *StockAlertRepo) ListLowStockCandidates(ctx context.Context, companyID int64, since time.Time) ([]repository.LowStockCandidate, error) {
	const query = `
	WITH recent_sales AS (
	    SELECT s.product_id, s.warehouse_id, SUM(s.quantity_sold) AS units
	    FROM sales s
	    JOIN warehouses sw ON sw.id = s.warehouse_id
	    WHERE sw.company_id = $1
	      AND s.sold_at   >= $2
	    GROUP BY s.product_id, s.warehouse_id
	)
	SELECT
	    i.id, i.warehouse_id, i.product_id, i.quantity, i.low_stock_threshold, i.updated_at,
	    p.id, p.company_id, p.supplier_id, p.sku, p.name, p.price, p.is_bundle, p.created_at,
	    w.id, w.company_id, w.name, w.location, w.created_at,
	    sup.id, sup.company_id, sup.name, sup.contact_email, sup.phone,
	    COALESCE(rs.units, 0) AS recent_sales
	FROM inventory i
	JOIN warehouses w         ON w.id  = i.warehouse_id
	JOIN products   p         ON p.id  = i.product_id
	LEFT JOIN suppliers sup   ON sup.id = p.supplier_id
	LEFT JOIN recent_sales rs ON rs.product_id = i.product_id AND rs.warehouse_id = i.warehouse_id
	WHERE w.company_id = $1
	  AND i.quantity  <= i.low_stock_threshold
	ORDER BY w.id, p.id`

	rows, err := r.q.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("stockAlert.ListLowStockCandidates: %w", err)
	}
	defer rows.Close()

	var items []repository.LowStockCandidate
	for rows.Next() {
		var (
			c          repository.LowStockCandidate
			supID      *int64
			supCompany *int64
			supName    *string
			supEmail   *string
			supPhone   *string
		)
		if err := rows.Scan(
			&c.Inventory.ID, &c.Inventory.WarehouseID, &c.Inventory.ProductID,
			&c.Inventory.Quantity, &c.Inventory.LowStockThreshold, &c.Inventory.UpdatedAt,
			&c.Product.ID, &c.Product.CompanyID, &c.Product.SupplierID, &c.Product.SKU,
			&c.Product.Name, &c.Product.Price, &c.Product.IsBundle, &c.Product.CreatedAt,
			&c.Warehouse.ID, &c.Warehouse.CompanyID, &c.Warehouse.Name, &c.Warehouse.Location, &c.Warehouse.CreatedAt,
			&supID, &supCompany, &supName, &supEmail, &supPhone,
			&c.RecentSales,
		); err != nil {
			return nil, fmt.Errorf("stockAlert.ListLowStockCandidates scan: %w", err)
		}
		if supID != nil {
			c.Supplier = &entity.Supplier{
				ID:           *supID,
				ContactEmail: supEmail,
				Phone:        supPhone,
			}
			if supCompany != nil {
				c.Supplier.CompanyID = *supCompany
			}
			if supName != nil {
				c.Supplier.Name = *supName
			}
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stockAlert.ListLowStockCandidates rows: %w", err)
	}
	return items, nil
}
