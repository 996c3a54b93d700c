package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/ledger"
)

// ProductUseCase casos de uso CRUD y búsqueda para productos. La validación de
// entrada vive aquí, en la frontera: el libro confía en sus llamadores.
type ProductUseCase struct {
	ledger *ledger.Ledger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(l *ledger.Ledger) *ProductUseCase {
	return &ProductUseCase{ledger: l}
}

// Create valida y crea un producto nuevo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	p := uc.ledger.AddProduct(ledger.ProductInput{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		Description: in.Description,
		Supplier:    in.Supplier,
	})
	out := dto.FromProduct(p)
	return &out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.ledger.ProductByID(id)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(*p)
	return &out, nil
}

// List devuelve el catálogo completo en orden de inserción.
func (uc *ProductUseCase) List() *dto.ProductListResponse {
	items := dto.FromProducts(uc.ledger.Products())
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

// Search filtra y opcionalmente ordena el catálogo.
func (uc *ProductUseCase) Search(query, category, stockLevel, sortBy string) *dto.ProductListResponse {
	found := uc.ledger.SearchProducts(query, category, stockLevel)
	if sortBy != "" {
		found = ledger.SortProducts(found, sortBy)
	}
	items := dto.FromProducts(found)
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

// Update fusiona campos parciales sobre un producto existente.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Price != nil && in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock != nil && *in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.ledger.UpdateProduct(id, ledger.ProductUpdate{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		MinStock:    in.MinStock,
		Description: in.Description,
		Supplier:    in.Supplier,
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(*p)
	return &out, nil
}

// Delete elimina un producto. Los pedidos y movimientos históricos se conservan.
func (uc *ProductUseCase) Delete(id int64) (*dto.ProductResponse, error) {
	p, err := uc.ledger.DeleteProduct(id)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(*p)
	return &out, nil
}
