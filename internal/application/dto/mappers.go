package dto

import "github.com/jhoicas/pos-ledger/internal/domain/entity"

// FromProduct construye la representación HTTP de un producto.
func FromProduct(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Price:          p.Price,
		Stock:          p.Stock,
		MinStock:       p.MinStock,
		StockLevel:     p.StockLevel(),
		InventoryValue: p.InventoryValue(),
		Description:    p.Description,
		Supplier:       p.Supplier,
		LastStockIn:    p.LastStockIn,
	}
}

// FromProducts mapea una lista de productos.
func FromProducts(list []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProduct(p))
	}
	return out
}

// FromOrder construye la representación HTTP de un pedido.
func FromOrder(o entity.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		Amount:      o.Amount,
		Time:        o.Time,
		Status:      o.Status,
	}
}

// FromMovement construye la representación HTTP de un movimiento.
func FromMovement(m entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		CurrentStock:  m.CurrentStock,
		Date:          m.Date,
		Notes:         m.Notes,
		Supplier:      m.Supplier,
		UnitCost:      m.UnitCost,
		User:          m.User,
	}
}

// FromMovements mapea una lista de movimientos.
func FromMovements(list []entity.StockMovement) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromMovement(m))
	}
	return out
}
