// @title        Inventario Alertas API
// @version      1.0
// @description  Alta de productos con inventario inicial y alertas de stock bajo por empresa.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/inventario-alertas/docs"
	"github.com/jhoicas/inventario-alertas/internal/application/inventory"
	"github.com/jhoicas/inventario-alertas/internal/application/usecase"
	"github.com/jhoicas/inventario-alertas/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/inventario-alertas/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-alertas/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/inventario-alertas/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/inventario-alertas/internal/interfaces/http"
	"github.com/jhoicas/inventario-alertas/pkg/config"
	"github.com/jhoicas/inventario-alertas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("alert_window_days", cfg.Alerts.SalesWindowDays).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones de base de datos")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Métricas: un Collector nil desactiva los observadores sin condicionales extra.
	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.New()
	}

	txRunner := postgres.NewTxRunner(pool)
	productUC := usecase.NewProductUseCase(txRunner, log, collector)
	alertsUC := inventory.NewLowStockAlertUseCase(txRunner, log, collector,
		inventory.WithSalesWindow(cfg.Alerts.SalesWindowDays))
	reportUC := inventory.NewAlertReportUseCase(alertsUC, map[string]inventory.ReportRenderer{
		inventory.ReportFormatPDF:  infrapdf.NewMarotoAlertReport(),
		inventory.ReportFormatXLSX: infraxlsx.NewExcelizeAlertReport(),
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))
	if collector != nil {
		app.Use(collector.Middleware())
		app.Get("/metrics", collector.Handler())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Alertas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC: productUC,
		AlertsUC:  alertsUC,
		ReportUC:  reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
