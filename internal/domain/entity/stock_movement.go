package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIn            = "in"     // entrada genérica
	MovementTypeOut           = "out"    // salida por venta
	MovementTypeAdjust        = "adjust" // ajuste directo de stock
	MovementTypeReceive       = "receive"
	MovementTypeAdjustmentIn  = "adjustment_in"
	MovementTypeAdjustmentOut = "adjustment_out"
	MovementTypeReturn        = "return"
	MovementTypeDamage        = "damage"
	MovementTypeExpired       = "expired"
)

// StockMovement representa un delta firmado aplicado al stock de un producto,
// con los valores antes/después. Invariante: CurrentStock == PreviousStock + Quantity.
// ProductName es copia denormalizada: no se re-sincroniza si el producto se
// renombra, y la referencia ProductID puede quedar colgante si el producto se
// elimina (se conserva por fidelidad de auditoría).
type StockMovement struct {
	ID            int64           `json:"id"`
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Type          string          `json:"type"`
	Quantity      int             `json:"quantity"` // positivo entrada, negativo salida/ajuste-
	PreviousStock int             `json:"previous_stock"`
	CurrentStock  int             `json:"current_stock"`
	Date          time.Time       `json:"date"`
	Notes         string          `json:"notes,omitempty"`
	Supplier      string          `json:"supplier,omitempty"`
	UnitCost      decimal.Decimal `json:"unit_cost"`      // costo unitario en entradas
	User          string          `json:"user,omitempty"` // quién registró el movimiento
}
