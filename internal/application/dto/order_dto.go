package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest body para POST /api/orders.
// Con ProductID el monto se calcula con el precio vigente del catálogo;
// sin ProductID es un pedido libre y ProductName/Amount son obligatorios.
type PlaceOrderRequest struct {
	ProductID   int64            `json:"product_id,omitempty"`
	ProductName string           `json:"product_name,omitempty"`
	Quantity    int              `json:"quantity"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

// OrderResponse representación HTTP de un pedido.
type OrderResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	Time        time.Time       `json:"time"`
	Status      string          `json:"status"`
}

// OrderListResponse respuesta de GET /api/orders.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}
