// Package seed contiene los datos iniciales de la tienda, usados cuando no
// existe un snapshot previo.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/ledger"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

// Snapshot devuelve el catálogo, los pedidos y los movimientos iniciales.
func Snapshot() ledger.Snapshot {
	return ledger.Snapshot{
		Products:  products(),
		Orders:    orders(),
		Movements: movements(),
	}
}

func products() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Cola", Category: "Bebidas", Price: decimal.NewFromInt(1500), Stock: 45, MinStock: 10, Description: "Refresco carbonatado", Supplier: "Coca-Cola", LastStockIn: date(2024, 11, 10)},
		{ID: 2, Name: "Cider", Category: "Bebidas", Price: decimal.NewFromInt(1500), Stock: 32, MinStock: 10, Description: "Gaseosa de limón", Supplier: "Lotte Chilsung", LastStockIn: date(2024, 11, 12)},
		{ID: 3, Name: "Chocopie", Category: "Snacks", Price: decimal.NewFromInt(2000), Stock: 8, MinStock: 15, Description: "Pastelito de chocolate", Supplier: "Orion", LastStockIn: date(2024, 11, 8)},
		{ID: 4, Name: "Ramen", Category: "Comida instantánea", Price: decimal.NewFromInt(1200), Stock: 25, MinStock: 20, Description: "Fideos instantáneos picantes", Supplier: "Nongshim", LastStockIn: date(2024, 11, 14)},
		{ID: 5, Name: "Tissue", Category: "Hogar", Price: decimal.NewFromInt(3000), Stock: 2, MinStock: 5, Description: "Papel suave", Supplier: "Yuhan-Kimberly", LastStockIn: date(2024, 11, 5)},
		{ID: 6, Name: "Gum", Category: "Snacks", Price: decimal.NewFromInt(800), Stock: 50, MinStock: 20, Description: "Chicle de menta", Supplier: "Lotte", LastStockIn: date(2024, 11, 13)},
		{ID: 7, Name: "Water", Category: "Bebidas", Price: decimal.NewFromInt(1000), Stock: 60, MinStock: 30, Description: "Agua mineral", Supplier: "Samdasoo", LastStockIn: date(2024, 11, 15)},
		{ID: 8, Name: "Cup Ramen", Category: "Comida instantánea", Price: decimal.NewFromInt(1800), Stock: 15, MinStock: 10, Description: "Ramen en vaso", Supplier: "Nongshim", LastStockIn: date(2024, 11, 11)},
	}
}

func orders() []entity.Order {
	return []entity.Order{
		{ID: 1001, ProductID: 1, ProductName: "Cola", Quantity: 2, Amount: decimal.NewFromInt(3000), Time: at(2024, 11, 15, 14, 30), Status: entity.OrderStatusCompleted},
		{ID: 1002, ProductID: 3, ProductName: "Chocopie", Quantity: 1, Amount: decimal.NewFromInt(2000), Time: at(2024, 11, 15, 14, 25), Status: entity.OrderStatusCompleted},
		{ID: 1003, ProductID: 4, ProductName: "Ramen", Quantity: 3, Amount: decimal.NewFromInt(3600), Time: at(2024, 11, 15, 14, 20), Status: entity.OrderStatusCompleted},
		{ID: 1004, ProductID: 2, ProductName: "Cider", Quantity: 1, Amount: decimal.NewFromInt(1500), Time: at(2024, 11, 15, 14, 15), Status: entity.OrderStatusCompleted},
		{ID: 1005, ProductID: 7, ProductName: "Water", Quantity: 2, Amount: decimal.NewFromInt(2000), Time: at(2024, 11, 15, 14, 10), Status: entity.OrderStatusCompleted},
		{ID: 1006, ProductID: 8, ProductName: "Cup Ramen", Quantity: 1, Amount: decimal.NewFromInt(1800), Time: at(2024, 11, 15, 14, 5), Status: entity.OrderStatusCompleted},
		{ID: 1007, ProductID: 6, ProductName: "Gum", Quantity: 2, Amount: decimal.NewFromInt(1600), Time: at(2024, 11, 15, 14, 0), Status: entity.OrderStatusCompleted},
	}
}

func movements() []entity.StockMovement {
	return []entity.StockMovement{
		{ID: 1, ProductID: 1, ProductName: "Cola", Type: entity.MovementTypeIn, Quantity: 50, PreviousStock: 20, CurrentStock: 70, Date: at(2024, 11, 10, 9, 0), Notes: "entrada programada", Supplier: "Coca-Cola", UnitCost: decimal.Zero},
		{ID: 2, ProductID: 3, ProductName: "Chocopie", Type: entity.MovementTypeOut, Quantity: -5, PreviousStock: 13, CurrentStock: 8, Date: at(2024, 11, 15, 14, 25), Notes: "compra de cliente", UnitCost: decimal.Zero},
		{ID: 3, ProductID: 5, ProductName: "Tissue", Type: entity.MovementTypeAdjust, Quantity: -3, PreviousStock: 5, CurrentStock: 2, Date: at(2024, 11, 14, 16, 0), Notes: "ajuste por mercancía dañada", UnitCost: decimal.Zero},
		{ID: 4, ProductID: 7, ProductName: "Water", Type: entity.MovementTypeIn, Quantity: 100, PreviousStock: 20, CurrentStock: 120, Date: at(2024, 11, 15, 10, 30), Notes: "entrada por volumen", Supplier: "Samdasoo", UnitCost: decimal.Zero},
	}
}
