package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-alertas/internal/application/dto"
	"github.com/jhoicas/inventario-alertas/internal/domain"
	domaininv "github.com/jhoicas/inventario-alertas/internal/domain/inventory"
	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
	"github.com/jhoicas/inventario-alertas/pkg/logger"
)

// UnknownSupplierName nombre reportado cuando el producto no tiene proveedor.
const UnknownSupplierName = "Unknown"

// LowStockAlertUseCase calcula las alertas de stock bajo de una empresa.
// Es de solo lectura y sin estado compartido: admite cualquier número de llamadas concurrentes.
type LowStockAlertUseCase struct {
	txRunner   AlertTxRunner
	log        *logger.Logger
	observer   AlertObserver
	now        func() time.Time
	windowDays int
}

// AlertOption configura el caso de uso.
type AlertOption func(*LowStockAlertUseCase)

// WithClock fija la fuente de "ahora" (tests).
func WithClock(now func() time.Time) AlertOption {
	return func(uc *LowStockAlertUseCase) { uc.now = now }
}

// WithSalesWindow cambia la ventana de ventas recientes; valores <= 0 se ignoran.
func WithSalesWindow(days int) AlertOption {
	return func(uc *LowStockAlertUseCase) {
		if days > 0 {
			uc.windowDays = days
		}
	}
}

// NewLowStockAlertUseCase construye el caso de uso. log y observer pueden ser nil.
func NewLowStockAlertUseCase(txRunner AlertTxRunner, log *logger.Logger, observer AlertObserver, opts ...AlertOption) *LowStockAlertUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if observer == nil {
		observer = noopAlertObserver{}
	}
	uc := &LowStockAlertUseCase{
		txRunner:   txRunner,
		log:        log,
		observer:   observer,
		now:        time.Now,
		windowDays: domaininv.DefaultSalesWindowDays,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// GetLowStockAlerts devuelve las alertas de la empresa:
//  1. Filas de inventario de sus bodegas con quantity <= low_stock_threshold (proveedor opcional).
//  2. Ventas del mismo producto y bodega en la ventana móvil (sold_at >= ahora - ventana).
//  3. Sin ventas recientes no hay alerta (stock muerto no es urgente).
//  4. Días hasta quiebre = floor(cantidad / (ventas / ventana)).
//
// Una empresa sin bodegas devuelve una lista vacía. Cualquier fallo de persistencia
// se devuelve como domain.ErrInternal.
func (uc *LowStockAlertUseCase) GetLowStockAlerts(ctx context.Context, companyID int64) (*dto.LowStockAlertsResponse, error) {
	start := time.Now()
	since := uc.now().Add(-time.Duration(uc.windowDays) * 24 * time.Hour)

	var candidates []repository.LowStockCandidate
	err := uc.txRunner.RunReadOnly(ctx, func(alertRepo repository.StockAlertRepository) error {
		var err error
		candidates, err = alertRepo.ListLowStockCandidates(ctx, companyID, since)
		return err
	})
	if err != nil {
		uc.observer.AlertsFailed()
		uc.log.Ctx(ctx).Error().Err(err).Int64("company_id", companyID).Msg("cálculo de alertas de stock bajo")
		return nil, domain.ErrInternal
	}

	alerts := BuildLowStockAlerts(candidates, uc.windowDays)
	uc.observer.AlertsComputed(len(alerts), time.Since(start))
	uc.log.Ctx(ctx).Debug().
		Int64("company_id", companyID).
		Int("candidates", len(candidates)).
		Int("alerts", len(alerts)).
		Msg("alertas de stock bajo calculadas")

	return &dto.LowStockAlertsResponse{
		Alerts:      alerts,
		TotalAlerts: len(alerts),
	}, nil
}

// BuildLowStockAlerts aplica el filtro de ventas recientes y la proyección de quiebre
// sobre los candidatos, conservando su orden. Nunca devuelve nil.
func BuildLowStockAlerts(candidates []repository.LowStockCandidate, windowDays int) []dto.LowStockAlertDTO {
	alerts := make([]dto.LowStockAlertDTO, 0, len(candidates))
	for _, c := range candidates {
		if !c.Inventory.IsLow() {
			continue
		}
		if c.RecentSales <= 0 {
			continue
		}
		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:         c.Product.ID,
			ProductName:       c.Product.Name,
			SKU:               c.Product.SKU,
			WarehouseID:       c.Warehouse.ID,
			WarehouseName:     c.Warehouse.Name,
			CurrentStock:      c.Inventory.Quantity,
			Threshold:         c.Inventory.LowStockThreshold,
			DaysUntilStockout: domaininv.DaysUntilStockout(c.Inventory.Quantity, c.RecentSales, windowDays),
			Supplier:          supplierSummary(c),
		})
	}
	return alerts
}

func supplierSummary(c repository.LowStockCandidate) dto.SupplierSummaryDTO {
	if c.Supplier == nil {
		return dto.SupplierSummaryDTO{Name: UnknownSupplierName}
	}
	id := c.Supplier.ID
	return dto.SupplierSummaryDTO{
		ID:           &id,
		Name:         c.Supplier.Name,
		ContactEmail: c.Supplier.ContactEmail,
	}
}
