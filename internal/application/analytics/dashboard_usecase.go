// Package analytics contiene los casos de uso del dashboard de la tienda.
package analytics

import (
	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/ledger"
)

const dashboardRecentMovements = 10 // movimientos en el widget de actividad

// DashboardUseCase genera el resumen del día para la pantalla principal.
type DashboardUseCase struct {
	ledger *ledger.Ledger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(l *ledger.Ledger) *DashboardUseCase {
	return &DashboardUseCase{ledger: l}
}

// GetSummary construye el DashboardSummaryDTO: KPIs del catálogo, ventas del
// día (rango real 00:00 – 23:59, no comparación de texto) y actividad reciente.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	stats := uc.ledger.Stats()

	recent := uc.ledger.Movements()
	if len(recent) > dashboardRecentMovements {
		recent = recent[:dashboardRecentMovements]
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:    stats.TotalProducts,
		TotalStock:       stats.TotalStock,
		TotalValue:       stats.TotalValue,
		LowStockCount:    stats.LowStockCount,
		OutOfStockCount:  stats.OutOfStockCount,
		CategoryCount:    stats.CategoryCount,
		Categories:       stats.Categories,
		TodaySales:       stats.TodaySales,
		TodayOrderCount:  stats.TodayOrderCount,
		LowStockProducts: dto.FromProducts(stats.LowStockProducts),
		RecentMovements:  dto.FromMovements(recent),
	}
}

// GetCategoryStats devuelve el desglose por categoría en orden de primera aparición.
func (uc *DashboardUseCase) GetCategoryStats() []dto.CategoryStatDTO {
	stats := uc.ledger.CategoryStats()
	out := make([]dto.CategoryStatDTO, 0, len(stats))
	for _, c := range stats {
		out = append(out, dto.CategoryStatDTO{
			Category:   c.Category,
			Count:      c.Count,
			TotalStock: c.TotalStock,
			TotalValue: c.TotalValue,
			LowStock:   c.LowStock,
			OutOfStock: c.OutOfStock,
		})
	}
	return out
}
