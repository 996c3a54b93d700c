package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del catálogo más las ventas del día en curso (00:00 – 23:59).
type DashboardSummaryDTO struct {
	TotalProducts   int             `json:"total_products"`
	TotalStock      int             `json:"total_stock"`
	TotalValue      decimal.Decimal `json:"total_value"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	CategoryCount   int             `json:"category_count"`
	Categories      []string        `json:"categories"`

	TodaySales      decimal.Decimal `json:"today_sales"`
	TodayOrderCount int             `json:"today_order_count"`

	// Productos en o por debajo del punto de reorden, para el widget de alertas.
	LowStockProducts []ProductResponse `json:"low_stock_products"`

	// Últimos movimientos de stock (más reciente primero).
	RecentMovements []MovementResponse `json:"recent_movements"`
}

// CategoryStatDTO fila del desglose por categoría.
type CategoryStatDTO struct {
	Category   string          `json:"category"`
	Count      int             `json:"count"`
	TotalStock int             `json:"total_stock"`
	TotalValue decimal.Decimal `json:"total_value"`
	LowStock   int             `json:"low_stock"`
	OutOfStock int             `json:"out_of_stock"`
}
