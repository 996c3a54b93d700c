package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"` // 0 => default 10
	Description string          `json:"description"`
	Supplier    string          `json:"supplier"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no se tocan.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	MinStock    *int             `json:"min_stock,omitempty"`
	Description *string          `json:"description,omitempty"`
	Supplier    *string          `json:"supplier,omitempty"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Stock          int             `json:"stock"`
	MinStock       int             `json:"min_stock"`
	StockLevel     string          `json:"stock_level"` // low | medium | high
	InventoryValue decimal.Decimal `json:"inventory_value"`
	Description    string          `json:"description"`
	Supplier       string          `json:"supplier"`
	LastStockIn    time.Time       `json:"last_stock_in"`
}

// ProductListResponse respuesta de listados y búsquedas.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
