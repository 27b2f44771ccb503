package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventario-alertas/internal/application/dto"
	"github.com/jhoicas/inventario-alertas/internal/domain"
)

// Formatos de exportación del reporte de stock bajo.
const (
	ReportFormatPDF  = "pdf"
	ReportFormatXLSX = "xlsx"
)

// AlertReport datos de entrada de un renderizador.
type AlertReport struct {
	CompanyID   int64
	GeneratedAt time.Time
	WindowDays  int
	Alerts      []dto.LowStockAlertDTO
}

// ReportRenderer convierte un AlertReport en un archivo descargable.
type ReportRenderer interface {
	Render(ctx context.Context, report AlertReport) ([]byte, error)
	ContentType() string
}

// ReportFile archivo listo para enviar al cliente.
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// AlertReportUseCase exporta las alertas de stock bajo en PDF o XLSX.
type AlertReportUseCase struct {
	alerts    *LowStockAlertUseCase
	renderers map[string]ReportRenderer
}

// NewAlertReportUseCase construye el caso de uso. renderers se indexa por formato (pdf, xlsx).
func NewAlertReportUseCase(alerts *LowStockAlertUseCase, renderers map[string]ReportRenderer) *AlertReportUseCase {
	return &AlertReportUseCase{alerts: alerts, renderers: renderers}
}

// Export calcula las alertas con la misma lógica del endpoint JSON y las renderiza.
//
// Retorna:
//   - *domain.ValidationError si el formato no está soportado.
//   - domain.ErrInternal si falla el cálculo o el renderizado.
func (uc *AlertReportUseCase) Export(ctx context.Context, companyID int64, format string) (*ReportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ReportFormatPDF
	}
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, domain.NewValidationError("formato no soportado", "format")
	}

	res, err := uc.alerts.GetLowStockAlerts(ctx, companyID)
	if err != nil {
		return nil, err
	}

	generatedAt := uc.alerts.now()
	content, err := renderer.Render(ctx, AlertReport{
		CompanyID:   companyID,
		GeneratedAt: generatedAt,
		WindowDays:  uc.alerts.windowDays,
		Alerts:      res.Alerts,
	})
	if err != nil {
		uc.alerts.log.Ctx(ctx).Error().Err(err).
			Int64("company_id", companyID).
			Str("format", format).
			Msg("renderizado del reporte de stock bajo")
		return nil, domain.ErrInternal
	}

	return &ReportFile{
		Filename:    fmt.Sprintf("stock_bajo_%d_%s.%s", companyID, generatedAt.Format("20060102_150405"), format),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}
