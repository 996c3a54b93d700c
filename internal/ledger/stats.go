package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Stats resumen derivado del catálogo y los pedidos.
type Stats struct {
	TotalProducts    int               `json:"total_products"`
	TotalStock       int               `json:"total_stock"`
	TotalValue       decimal.Decimal   `json:"total_value"` // sum(stock * precio)
	LowStockCount    int               `json:"low_stock_count"`
	LowStockProducts []entity.Product  `json:"low_stock_products"`
	OutOfStockCount  int               `json:"out_of_stock_count"`
	CategoryCount    int               `json:"category_count"`
	Categories       []string          `json:"categories"` // orden de primera aparición
	TodaySales       decimal.Decimal   `json:"today_sales"`
	TodayOrderCount  int               `json:"today_order_count"`
}

// CategoryStat agregado por categoría.
type CategoryStat struct {
	Category   string          `json:"category"`
	Count      int             `json:"count"`
	TotalStock int             `json:"total_stock"`
	TotalValue decimal.Decimal `json:"total_value"`
	LowStock   int             `json:"low_stock"`   // 0 < stock <= minStock
	OutOfStock int             `json:"out_of_stock"` // stock == 0
}

// Stats calcula el resumen en un barrido lineal. "Hoy" es el rango real
// [00:00, +24h) del reloj del libro, no una comparación de prefijos de texto.
func (l *Ledger) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Stats{
		TotalProducts: len(l.products),
		TotalValue:    decimal.Zero,
		TodaySales:    decimal.Zero,
	}

	seen := map[string]bool{}
	for _, p := range l.products {
		s.TotalStock += p.Stock
		s.TotalValue = s.TotalValue.Add(p.InventoryValue())
		if p.IsLowStock() {
			s.LowStockProducts = append(s.LowStockProducts, p)
		}
		if p.Stock == 0 {
			s.OutOfStockCount++
		}
		if !seen[p.Category] {
			seen[p.Category] = true
			s.Categories = append(s.Categories, p.Category)
		}
	}
	s.LowStockCount = len(s.LowStockProducts)
	s.CategoryCount = len(s.Categories)

	now := l.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	for _, o := range l.orders {
		if !o.Time.Before(dayStart) && o.Time.Before(dayEnd) {
			s.TodaySales = s.TodaySales.Add(o.Amount)
			s.TodayOrderCount++
		}
	}
	return s
}

// CategoryStats agrega {count, stock total, valor total, bajos, agotados} por
// categoría, en orden de primera aparición en el catálogo.
func (l *Ledger) CategoryStats() []CategoryStat {
	l.mu.RLock()
	defer l.mu.RUnlock()

	index := map[string]int{}
	out := make([]CategoryStat, 0, 8)
	for _, p := range l.products {
		i, ok := index[p.Category]
		if !ok {
			i = len(out)
			index[p.Category] = i
			out = append(out, CategoryStat{Category: p.Category, TotalValue: decimal.Zero})
		}
		out[i].Count++
		out[i].TotalStock += p.Stock
		out[i].TotalValue = out[i].TotalValue.Add(p.InventoryValue())
		switch {
		case p.Stock == 0:
			out[i].OutOfStock++
		case p.IsLowStock():
			out[i].LowStock++
		}
	}
	return out
}
