package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado de pedido. No existe máquina de estados: todo pedido registrado queda completado.
const OrderStatusCompleted = "completed"

// Order representa una venta registrada en el punto de venta.
// Amount se congela al momento del pedido (cantidad * precio unitario vigente)
// y no se recalcula si el precio del producto cambia después.
// ProductID == 0 indica un pedido libre sin producto del catálogo.
type Order struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"` // copia denormalizada
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	Time        time.Time       `json:"time"`
	Status      string          `json:"status"`
}
