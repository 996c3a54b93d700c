// Package inventory contiene los casos de uso de movimientos de stock:
// entradas de mercancía, ajustes y consulta del historial.
package inventory

import (
	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/ledger"
)

// Tipos de ajuste aceptados en el request HTTP.
const (
	AdjustmentIncrease = "increase"
	AdjustmentDecrease = "decrease"
)

// UseCase casos de uso de inventario sobre el libro.
type UseCase struct {
	ledger *ledger.Ledger
}

// NewUseCase construye el caso de uso.
func NewUseCase(l *ledger.Ledger) *UseCase {
	return &UseCase{ledger: l}
}

// Receive registra una entrada de mercancía. La cantidad debe ser positiva:
// esa validación vive aquí en la frontera, el libro no la repite.
func (uc *UseCase) Receive(in dto.ReceiveStockRequest) (*dto.ProductResponse, error) {
	if in.ProductID == 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.ledger.ReceiveStock(in.ProductID, in.Quantity, in.Supplier, in.UnitCost, in.Notes)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(*p)
	return &out, nil
}

// Adjust aplica un ajuste de inventario. Type increase suma, decrease resta;
// un decrease que dejaría el stock negativo falla con ErrInsufficientStock.
func (uc *UseCase) Adjust(user string, in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if in.ProductID == 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	qty := in.Quantity
	switch in.Type {
	case AdjustmentIncrease:
	case AdjustmentDecrease:
		qty = -qty
	default:
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.ledger.AdjustStock(in.ProductID, qty, in.Reason, user)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(*p)
	return &out, nil
}

// SetStock fija el stock absoluto de un producto con un movimiento "adjust".
func (uc *UseCase) SetStock(in dto.SetStockRequest) (*dto.ProductResponse, error) {
	if in.ProductID == 0 || in.NewStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.ledger.SetStock(in.ProductID, in.NewStock, "", in.Notes)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(*p)
	return &out, nil
}

// Movements devuelve la pista de auditoría completa, más reciente primero.
func (uc *UseCase) Movements() *dto.MovementListResponse {
	items := dto.FromMovements(uc.ledger.Movements())
	return &dto.MovementListResponse{Items: items, Total: len(items)}
}

// History devuelve el historial de movimientos de un producto.
// El producto puede haber sido eliminado: el historial se conserva igual.
func (uc *UseCase) History(productID int64) *dto.MovementListResponse {
	items := dto.FromMovements(uc.ledger.MovementsForProduct(productID))
	return &dto.MovementListResponse{Items: items, Total: len(items)}
}
