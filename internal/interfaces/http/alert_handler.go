package http

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-alertas/internal/application/dto"
	"github.com/jhoicas/inventario-alertas/internal/application/inventory"
)

// LowStockAlerter calcula alertas (implementado por inventory.LowStockAlertUseCase).
type LowStockAlerter interface {
	GetLowStockAlerts(ctx context.Context, companyID int64) (*dto.LowStockAlertsResponse, error)
}

// AlertExporter exporta alertas (implementado por inventory.AlertReportUseCase).
type AlertExporter interface {
	Export(ctx context.Context, companyID int64, format string) (*inventory.ReportFile, error)
}

// AlertHandler endpoints de alertas de stock bajo.
type AlertHandler struct {
	alerts   LowStockAlerter
	exporter AlertExporter
}

// NewAlertHandler construye el handler. exporter puede ser nil (sin ruta de exportación).
func NewAlertHandler(alerts LowStockAlerter, exporter AlertExporter) *AlertHandler {
	return &AlertHandler{alerts: alerts, exporter: exporter}
}

// GetLowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Productos bajo su umbral en las bodegas de la empresa, con ventas en los últimos 30 días y días estimados hasta quiebre.
// @Tags         alerts
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	companyID, ok := parseCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "company_id inválido", Fields: []string{"company_id"}})
	}
	out, err := h.alerts.GetLowStockAlerts(c.UserContext(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar alertas de stock bajo
// @Tags         alerts
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        company_id  path   int     true   "ID de la empresa"
// @Param        format      query  string  false  "pdf o xlsx"  default(pdf)
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock/export [get]
func (h *AlertHandler) Export(c *fiber.Ctx) error {
	companyID, ok := parseCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "company_id inválido", Fields: []string{"company_id"}})
	}
	file, err := h.exporter.Export(c.UserContext(), companyID, c.Query("format", inventory.ReportFormatPDF))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Status(fiber.StatusOK).Send(file.Content)
}

func parseCompanyID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("company_id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
