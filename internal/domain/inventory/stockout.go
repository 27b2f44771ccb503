package inventory

// DefaultSalesWindowDays ventana móvil (en días) sobre la que se mide la velocidad de venta.
const DefaultSalesWindowDays = 30

// NoStockoutRisk valor centinela de días cuando no hay velocidad de venta calculable.
const NoStockoutRisk = 999

// AverageDailySales calcula la velocidad de venta (servicio de dominio).
// Velocidad = VentasRecientes / DíasVentana
func AverageDailySales(recentSales int64, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	return float64(recentSales) / float64(windowDays)
}

// DaysUntilStockout proyecta los días hasta quiebre de stock a la velocidad actual.
// Días = floor(Cantidad / Velocidad), truncando. Se evalúa como floor(Cantidad·DíasVentana / Ventas)
// en enteros para que valores como Q=7, S=7 den exactamente 30 y no 29 por redondeo binario.
// Si la velocidad es cero devuelve NoStockoutRisk.
func DaysUntilStockout(quantity int, recentSales int64, windowDays int) int {
	if AverageDailySales(recentSales, windowDays) <= 0 {
		return NoStockoutRisk
	}
	if quantity <= 0 {
		return 0
	}
	return int(int64(quantity) * int64(windowDays) / recentSales)
}
