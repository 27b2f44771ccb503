package dto

// SupplierSummaryDTO bloque de proveedor dentro de una alerta. Nunca se omite:
// sin proveedor se reporta id=null, name="Unknown", contact_email=null.
type SupplierSummaryDTO struct {
	ID           *int64  `json:"id"`
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// LowStockAlertDTO una alerta de stock bajo para un producto en una bodega.
type LowStockAlertDTO struct {
	ProductID         int64              `json:"product_id"`
	ProductName       string             `json:"product_name"`
	SKU               string             `json:"sku"`
	WarehouseID       int64              `json:"warehouse_id"`
	WarehouseName     string             `json:"warehouse_name"`
	CurrentStock      int                `json:"current_stock"`
	Threshold         int                `json:"threshold"`
	DaysUntilStockout int                `json:"days_until_stockout"` // 999 = sin riesgo calculable
	Supplier          SupplierSummaryDTO `json:"supplier"`
}

// LowStockAlertsResponse salida de GET /api/companies/{company_id}/alerts/low-stock.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
