package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
)

// AlertTxRunner ejecuta fn dentro de una transacción de solo lectura con un snapshot
// consistente, pasando el repositorio de alertas atado a esa tx.
type AlertTxRunner interface {
	RunReadOnly(ctx context.Context, fn func(alertRepo repository.StockAlertRepository) error) error
}

// AlertObserver recibe el resultado de cada cálculo de alertas (métricas).
type AlertObserver interface {
	AlertsComputed(count int, elapsed time.Duration)
	AlertsFailed()
}

type noopAlertObserver struct{}

func (noopAlertObserver) AlertsComputed(int, time.Duration) {}
func (noopAlertObserver) AlertsFailed()                     {}
