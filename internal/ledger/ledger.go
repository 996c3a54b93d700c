// Package ledger implementa el libro de inventario de la tienda: es el dueño
// único de las tres colecciones (productos, pedidos y movimientos de stock) y
// expone las únicas operaciones que pueden mutarlas.
//
// Invariante central: el campo denormalizado Product.Stock y la pista de
// auditoría de StockMovement nunca se desfasan. Toda mutación de stock fija
// PreviousStock al valor previo a la llamada y CurrentStock al valor nuevo en
// el mismo paso, bajo el mismo lock.
package ledger

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Notas por defecto de los movimientos generados implícitamente.
const (
	notesCustomerPurchase = "compra de cliente"
	notesStockIn          = "entrada de mercancía"
)

const firstOrderID = 1001 // los pedidos arrancan en 1001

// Ledger contenedor de estado de dueño único. Cada operación pública toma el
// lock completo, por lo que es atómica respecto a todas las demás.
type Ledger struct {
	mu        sync.RWMutex
	products  []entity.Product
	orders    []entity.Order
	movements []entity.StockMovement

	now func() time.Time
}

// New construye un libro vacío.
func New() *Ledger {
	return &Ledger{now: time.Now}
}

// NewWithClock construye un libro con reloj inyectado (tests).
func NewWithClock(now func() time.Time) *Ledger {
	return &Ledger{now: now}
}

// ── Consultas de productos ────────────────────────────────────────────────────

// Products devuelve todos los productos en orden de inserción.
func (l *Ledger) Products() []entity.Product {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.Product, len(l.products))
	copy(out, l.products)
	return out
}

// ProductByID busca un producto por ID. Retorna ErrNotFound si no existe.
func (l *Ledger) ProductByID(id int64) (*entity.Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p := l.findProduct(id)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// SearchProducts filtra el catálogo. Los tres filtros son conjuntivos y los
// vacíos dejan pasar todo: query hace substring case-insensitive sobre nombre
// y descripción, category es igualdad exacta y stockLevel usa los buckets
// low/medium/high derivados del punto de reorden.
func (l *Ledger) SearchProducts(query, category, stockLevel string) []entity.Product {
	l.mu.RLock()
	defer l.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]entity.Product, 0, len(l.products))
	for _, p := range l.products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if stockLevel != "" && p.StockLevel() != stockLevel {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ── Mutación de productos ─────────────────────────────────────────────────────

// ProductInput datos para crear un producto.
type ProductInput struct {
	Name        string
	Category    string
	Price       decimal.Decimal
	Stock       int
	MinStock    int // 0 => default 10
	Description string
	Supplier    string
}

// AddProduct crea un producto con id = (máximo existente)+1, o 1 si el
// catálogo está vacío. MinStock sin definir queda en 10 y LastStockIn en la
// fecha actual. Devuelve el registro creado.
func (l *Ledger) AddProduct(in ProductInput) entity.Product {
	l.mu.Lock()
	defer l.mu.Unlock()

	minStock := in.MinStock
	if minStock <= 0 {
		minStock = 10
	}
	p := entity.Product{
		ID:          l.nextProductID(),
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		MinStock:    minStock,
		Description: in.Description,
		Supplier:    in.Supplier,
		LastStockIn: l.now(),
	}
	l.products = append(l.products, p)
	return p
}

// ProductUpdate campos parciales para actualizar un producto.
// Los punteros nil se dejan intactos. Stock no se toca aquí: se muta solo vía
// SetStock/ReceiveStock/AdjustStock para no saltarse la pista de auditoría.
type ProductUpdate struct {
	Name        *string
	Category    *string
	Price       *decimal.Decimal
	MinStock    *int
	Description *string
	Supplier    *string
}

// UpdateProduct fusiona los campos presentes sobre el registro existente.
func (l *Ledger) UpdateProduct(id int64, in ProductUpdate) (*entity.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.findProduct(id)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.MinStock != nil {
		p.MinStock = *in.MinStock
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Supplier != nil {
		p.Supplier = *in.Supplier
	}
	cp := *p
	return &cp, nil
}

// DeleteProduct elimina el producto y devuelve el registro eliminado.
// No cascada: pedidos y movimientos históricos conservan su ProductID
// colgante por fidelidad de auditoría.
func (l *Ledger) DeleteProduct(id int64) (*entity.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.products {
		if l.products[i].ID == id {
			deleted := l.products[i]
			l.products = append(l.products[:i], l.products[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ── Mutación de stock ─────────────────────────────────────────────────────────

// SetStock fija el stock del producto en newStock y registra un movimiento con
// delta = newStock - stockPrevio. PreviousStock y CurrentStock del movimiento
// se toman del mismo paso de mutación: nunca pueden quedar desfasados entre sí
// ni respecto al producto.
func (l *Ledger) SetStock(productID int64, newStock int, movType, notes string) (*entity.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.setStockLocked(productID, newStock, movType, notes, "", decimal.Zero, "")
}

// ReceiveStock registra una entrada de mercancía: stock += quantity,
// actualiza LastStockIn y agrega un movimiento tipo receive con proveedor y
// costo unitario. La positividad de quantity la valida la capa de aplicación;
// el libro confía en sus llamadores.
func (l *Ledger) ReceiveStock(productID int64, quantity int, supplier string, unitCost decimal.Decimal, notes string) (*entity.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.findProduct(productID)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if notes == "" {
		notes = notesStockIn
	}
	prev := p.Stock
	p.Stock += quantity
	p.LastStockIn = l.now()
	l.appendMovement(entity.StockMovement{
		ProductID:     p.ID,
		ProductName:   p.Name,
		Type:          entity.MovementTypeReceive,
		Quantity:      quantity,
		PreviousStock: prev,
		CurrentStock:  p.Stock,
		Notes:         notes,
		Supplier:      supplier,
		UnitCost:      unitCost,
	})
	cp := *p
	return &cp, nil
}

// AdjustStock aplica un ajuste firmado: positivo registra adjustment_in,
// negativo adjustment_out. Un ajuste que dejaría el stock por debajo de cero
// falla con ErrInsufficientStock (política uniforme de piso en cero).
func (l *Ledger) AdjustStock(productID int64, quantity int, reason, user string) (*entity.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.findProduct(productID)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if quantity == 0 {
		return nil, domain.ErrInvalidInput
	}
	movType := entity.MovementTypeAdjustmentIn
	if quantity < 0 {
		movType = entity.MovementTypeAdjustmentOut
		if p.Stock+quantity < 0 {
			return nil, domain.ErrInsufficientStock
		}
	}
	return l.setStockLocked(productID, p.Stock+quantity, movType, reason, "", decimal.Zero, user)
}

// setStockLocked requiere el lock tomado.
func (l *Ledger) setStockLocked(productID int64, newStock int, movType, notes, supplier string, unitCost decimal.Decimal, user string) (*entity.Product, error) {
	p := l.findProduct(productID)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if newStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if movType == "" {
		movType = entity.MovementTypeAdjust
	}
	prev := p.Stock
	p.Stock = newStock
	l.appendMovement(entity.StockMovement{
		ProductID:     p.ID,
		ProductName:   p.Name,
		Type:          movType,
		Quantity:      newStock - prev,
		PreviousStock: prev,
		CurrentStock:  newStock,
		Notes:         notes,
		Supplier:      supplier,
		UnitCost:      unitCost,
		User:          user,
	})
	cp := *p
	return &cp, nil
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

// OrderInput datos para registrar un pedido.
// ProductID == 0 registra un pedido libre sin descuento de stock.
type OrderInput struct {
	ProductID   int64
	ProductName string
	Quantity    int
	Amount      decimal.Decimal // cantidad * precio unitario al momento del pedido
}

// PlaceOrder registra un pedido con id = (máximo existente)+1 (1001 si la
// lista está vacía), hora actual y estado completado, insertado al frente
// (más reciente primero). Un pedido contra un producto del catálogo descuenta
// stock y produce exactamente un movimiento "out" con delta -Quantity; si la
// cantidad excede el stock disponible falla con ErrInsufficientStock y no
// registra nada.
func (l *Ledger) PlaceOrder(in OrderInput) (*entity.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	name := in.ProductName
	if in.ProductID != 0 {
		p := l.findProduct(in.ProductID)
		if p == nil {
			return nil, domain.ErrNotFound
		}
		if in.Quantity > p.Stock {
			return nil, domain.ErrInsufficientStock
		}
		name = p.Name
	}

	o := entity.Order{
		ID:          l.nextOrderID(),
		ProductID:   in.ProductID,
		ProductName: name,
		Quantity:    in.Quantity,
		Amount:      in.Amount,
		Time:        l.now(),
		Status:      entity.OrderStatusCompleted,
	}
	l.orders = append([]entity.Order{o}, l.orders...)

	if in.ProductID != 0 {
		p := l.findProduct(in.ProductID)
		if _, err := l.setStockLocked(in.ProductID, p.Stock-in.Quantity, entity.MovementTypeOut, notesCustomerPurchase, "", decimal.Zero, ""); err != nil {
			return nil, err
		}
	}
	return &o, nil
}

// Orders devuelve todos los pedidos ordenados descendentemente por hora
// (orden estable: empates conservan el orden relativo original).
func (l *Ledger) Orders() []entity.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.Order, len(l.orders))
	copy(out, l.orders)
	sortStableByTimeDesc(out, func(o entity.Order) time.Time { return o.Time })
	return out
}

// ── Movimientos ───────────────────────────────────────────────────────────────

// Movements devuelve la pista de auditoría completa, más reciente primero.
func (l *Ledger) Movements() []entity.StockMovement {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.StockMovement, len(l.movements))
	copy(out, l.movements)
	sortStableByTimeDesc(out, func(m entity.StockMovement) time.Time { return m.Date })
	return out
}

// MovementsForProduct devuelve el historial de un producto, más reciente primero.
func (l *Ledger) MovementsForProduct(productID int64) []entity.StockMovement {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.StockMovement, 0, 8)
	for _, m := range l.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	sortStableByTimeDesc(out, func(m entity.StockMovement) time.Time { return m.Date })
	return out
}

// ── Internos ──────────────────────────────────────────────────────────────────

func (l *Ledger) findProduct(id int64) *entity.Product {
	for i := range l.products {
		if l.products[i].ID == id {
			return &l.products[i]
		}
	}
	return nil
}

func (l *Ledger) nextProductID() int64 {
	var max int64
	for i := range l.products {
		if l.products[i].ID > max {
			max = l.products[i].ID
		}
	}
	return max + 1
}

func (l *Ledger) nextOrderID() int64 {
	if len(l.orders) == 0 {
		return firstOrderID
	}
	var max int64
	for i := range l.orders {
		if l.orders[i].ID > max {
			max = l.orders[i].ID
		}
	}
	return max + 1
}

// appendMovement asigna id = (máximo existente)+1 y fecha actual; requiere el
// lock tomado. Inserta al frente (más reciente primero).
func (l *Ledger) appendMovement(m entity.StockMovement) {
	var max int64
	for i := range l.movements {
		if l.movements[i].ID > max {
			max = l.movements[i].ID
		}
	}
	m.ID = max + 1
	m.Date = l.now()
	l.movements = append([]entity.StockMovement{m}, l.movements...)
}

func sortStableByTimeDesc[T any](items []T, at func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return at(items[i]).After(at(items[j]))
	})
}
