package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/ledger"
)

// OrderUseCase registro y consulta de pedidos.
type OrderUseCase struct {
	ledger *ledger.Ledger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(l *ledger.Ledger) *OrderUseCase {
	return &OrderUseCase{ledger: l}
}

// Place registra un pedido. Para pedidos de catálogo el monto se congela aquí
// con el precio vigente (cantidad * precio); para pedidos libres el monto
// viene en el request. Un pedido de catálogo descuenta stock y deja exactamente
// un movimiento "out"; si no hay stock suficiente retorna ErrInsufficientStock.
func (uc *OrderUseCase) Place(in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	input := ledger.OrderInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}
	if in.ProductID != 0 {
		p, err := uc.ledger.ProductByID(in.ProductID)
		if err != nil {
			return nil, err
		}
		input.Amount = p.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
	} else {
		if in.ProductName == "" || in.Amount == nil || in.Amount.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		input.ProductName = in.ProductName
		input.Amount = *in.Amount
	}

	o, err := uc.ledger.PlaceOrder(input)
	if err != nil {
		return nil, err
	}
	out := dto.FromOrder(*o)
	return &out, nil
}

// List devuelve los pedidos, más reciente primero.
func (uc *OrderUseCase) List() *dto.OrderListResponse {
	orders := uc.ledger.Orders()
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.FromOrder(o))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}
}
