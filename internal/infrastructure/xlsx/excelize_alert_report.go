// Package xlsx exporta las alertas de stock bajo a una hoja de cálculo.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-alertas/internal/application/inventory"
)

// ContentTypeXLSX tipo MIME del reporte.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetName nombre de la hoja con las alertas.
const SheetName = "Stock bajo"

var header = []interface{}{
	"product_id",
	"sku",
	"product_name",
	"warehouse_id",
	"warehouse_name",
	"current_stock",
	"threshold",
	"days_until_stockout",
	"supplier_id",
	"supplier_name",
	"supplier_contact_email",
}

var _ inventory.ReportRenderer = (*ExcelizeAlertReport)(nil)

// ExcelizeAlertReport implementa inventory.ReportRenderer con excelize.
type ExcelizeAlertReport struct{}

// NewExcelizeAlertReport construye el renderizador.
func NewExcelizeAlertReport() *ExcelizeAlertReport { return &ExcelizeAlertReport{} }

// ContentType implementa inventory.ReportRenderer.
func (r *ExcelizeAlertReport) ContentType() string { return ContentTypeXLSX }

// Render escribe una fila de encabezado y una fila por alerta. Los campos nulos
// del proveedor quedan como celdas vacías.
func (r *ExcelizeAlertReport) Render(ctx context.Context, report inventory.AlertReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}

	for i, a := range report.Alerts {
		var supplierID, email interface{}
		if a.Supplier.ID != nil {
			supplierID = *a.Supplier.ID
		}
		if a.Supplier.ContactEmail != nil {
			email = *a.Supplier.ContactEmail
		}
		excelRow := []interface{}{
			a.ProductID,
			a.SKU,
			a.ProductName,
			a.WarehouseID,
			a.WarehouseName,
			a.CurrentStock,
			a.Threshold,
			a.DaysUntilStockout,
			supplierID,
			a.Supplier.Name,
			email,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda fila %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}

	_ = f.SetPanes(SheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	})

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}
