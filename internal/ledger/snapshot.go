package ledger

import "github.com/jhoicas/pos-ledger/internal/domain/entity"

// Snapshot copia serializable completa de las tres colecciones. Es el único
// contrato de persistencia del libro: se escribe entero al apagar y se lee
// entero al arrancar, sin persistencia parcial ni log de transacciones.
type Snapshot struct {
	Products  []entity.Product       `json:"products"`
	Orders    []entity.Order         `json:"orders"`
	Movements []entity.StockMovement `json:"stock_movements"`
}

// Snapshot devuelve una copia profunda del estado actual.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Snapshot{
		Products:  make([]entity.Product, len(l.products)),
		Orders:    make([]entity.Order, len(l.orders)),
		Movements: make([]entity.StockMovement, len(l.movements)),
	}
	copy(s.Products, l.products)
	copy(s.Orders, l.orders)
	copy(s.Movements, l.movements)
	return s
}

// Restore reemplaza el estado completo con el snapshot recibido.
func (l *Ledger) Restore(s Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.products = make([]entity.Product, len(s.Products))
	l.orders = make([]entity.Order, len(s.Orders))
	l.movements = make([]entity.StockMovement, len(s.Movements))
	copy(l.products, s.Products)
	copy(l.orders, s.Orders)
	copy(l.movements, s.Movements)
}
