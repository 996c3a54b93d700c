package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiveStockRequest body para POST /api/inventory/receive.
type ReceiveStockRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"` // > 0
	Supplier  string          `json:"supplier,omitempty"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Notes     string          `json:"notes,omitempty"`
}

// AdjustStockRequest body para POST /api/inventory/adjust.
// Type es "increase" o "decrease"; Quantity siempre positiva.
type AdjustStockRequest struct {
	ProductID int64  `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason,omitempty"`
}

// SetStockRequest body para POST /api/inventory/stock (fijar stock absoluto).
type SetStockRequest struct {
	ProductID int64  `json:"product_id"`
	NewStock  int    `json:"new_stock"`
	Notes     string `json:"notes,omitempty"`
}

// MovementResponse representación HTTP de un movimiento de stock.
type MovementResponse struct {
	ID            int64           `json:"id"`
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Type          string          `json:"type"`
	Quantity      int             `json:"quantity"`
	PreviousStock int             `json:"previous_stock"`
	CurrentStock  int             `json:"current_stock"`
	Date          time.Time       `json:"date"`
	Notes         string          `json:"notes,omitempty"`
	Supplier      string          `json:"supplier,omitempty"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	User          string          `json:"user,omitempty"`
}

// MovementListResponse respuesta de listados de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
