package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock es el valor denormalizado de referencia; el historial de StockMovement
// es la pista de auditoría y ambos deben mantenerse consistentes en cada mutación.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"` // precio unitario de venta
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"` // punto de reorden
	Description string          `json:"description"`
	Supplier    string          `json:"supplier"`
	LastStockIn time.Time       `json:"last_stock_in"` // fecha de la última entrada
}

// Niveles de stock derivados del punto de reorden.
const (
	StockLevelLow    = "low"    // stock <= minStock
	StockLevelMedium = "medium" // minStock < stock <= 2*minStock
	StockLevelHigh   = "high"   // stock > 2*minStock
)

// StockLevel clasifica el stock actual respecto al punto de reorden.
func (p *Product) StockLevel() string {
	switch {
	case p.Stock <= p.MinStock:
		return StockLevelLow
	case p.Stock <= p.MinStock*2:
		return StockLevelMedium
	default:
		return StockLevelHigh
	}
}

// IsLowStock indica si el producto está en o por debajo del punto de reorden.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// InventoryValue devuelve stock * precio unitario.
func (p *Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
