package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC ProductCreator
	AlertsUC  LowStockAlerter
	ReportUC  AlertExporter // opcional
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)

	// Alertas por empresa
	companies := api.Group("/companies/:company_id")
	alertHandler := NewAlertHandler(deps.AlertsUC, deps.ReportUC)
	companies.Get("/alerts/low-stock", alertHandler.GetLowStock)
	if deps.ReportUC != nil {
		companies.Get("/alerts/low-stock/export", alertHandler.Export)
	}
}
