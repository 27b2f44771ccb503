// Package metrics expone contadores e histogramas Prometheus del servicio.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventario-alertas/internal/application/inventory"
	"github.com/jhoicas/inventario-alertas/internal/application/usecase"
)

const namespace = "inventario"

var (
	_ usecase.ProvisioningObserver = (*Collector)(nil)
	_ inventory.AlertObserver      = (*Collector)(nil)
)

// Collector agrupa las métricas del servicio. Un Collector nil es válido y no registra nada.
type Collector struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	productsProvisioned prometheus.Counter
	provisioningFailed  *prometheus.CounterVec

	alertsReturned prometheus.Counter
	alertRuns      *prometheus.CounterVec
	alertDuration  prometheus.Histogram
}

// New registra las métricas en un registry propio (más los collectors de Go y del proceso).
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return build(reg)
}

func build(reg *prometheus.Registry) *Collector {
	c := &Collector{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas por método, ruta y código de estado.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		productsProvisioned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "products_provisioned_total",
			Help:      "Productos creados con su inventario inicial.",
		}),
		provisioningFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "product_provisioning_failures_total",
			Help:      "Altas de producto rechazadas o fallidas por motivo.",
		}, []string{"reason"}),
		alertsReturned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "low_stock_alerts_returned_total",
			Help:      "Alertas de stock bajo devueltas en total.",
		}),
		alertRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "low_stock_alert_runs_total",
			Help:      "Cálculos de alertas de stock bajo por resultado.",
		}, []string{"status"}),
		alertDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "low_stock_alert_duration_seconds",
			Help:      "Duración del cálculo de alertas de stock bajo.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(
		c.httpRequests, c.httpDuration,
		c.productsProvisioned, c.provisioningFailed,
		c.alertsReturned, c.alertRuns, c.alertDuration,
	)
	return c
}

// Registry devuelve el registry usado (tests y handlers adicionales).
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ProductProvisioned implementa usecase.ProvisioningObserver.
func (c *Collector) ProductProvisioned() {
	if c == nil {
		return
	}
	c.productsProvisioned.Inc()
}

// ProvisioningFailed implementa usecase.ProvisioningObserver.
func (c *Collector) ProvisioningFailed(reason string) {
	if c == nil {
		return
	}
	c.provisioningFailed.WithLabelValues(reason).Inc()
}

// AlertsComputed implementa inventory.AlertObserver.
func (c *Collector) AlertsComputed(count int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.alertRuns.WithLabelValues("success").Inc()
	c.alertsReturned.Add(float64(count))
	c.alertDuration.Observe(elapsed.Seconds())
}

// AlertsFailed implementa inventory.AlertObserver.
func (c *Collector) AlertsFailed() {
	if c == nil {
		return
	}
	c.alertRuns.WithLabelValues("failure").Inc()
}

// Middleware mide cada petición. La etiqueta route usa el patrón registrado
// (/api/companies/:company_id/...) para no disparar la cardinalidad.
func (c *Collector) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if c == nil {
			return ctx.Next()
		}
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := ctx.Route().Path
		if status == fiber.StatusNotFound {
			route = "unmatched"
		}
		method := ctx.Method()
		c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		c.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone /metrics en formato Prometheus.
func (c *Collector) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
}
