// Package report genera el reporte de inventario de la tienda en CSV y PDF:
// totales generales, desglose por categoría y movimientos recientes.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/ledger"
)

const reportRecentMovements = 20 // movimientos incluidos en el reporte

// Data datos del reporte de inventario.
type Data struct {
	GeneratedAt     time.Time
	TotalProducts   int
	TotalStock      int
	TotalStockValue decimal.Decimal
	LowStockCount   int // 0 < stock <= minStock
	OutOfStockCount int // stock == 0
	Categories      []ledger.CategoryStat
	RecentMovements []entity.StockMovement
}

// UseCase construye y renderiza reportes de inventario.
type UseCase struct {
	ledger *ledger.Ledger
	pdf    PDFGenerator
	now    func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(l *ledger.Ledger, pdf PDFGenerator) *UseCase {
	return &UseCase{ledger: l, pdf: pdf, now: time.Now}
}

// Build arma los datos del reporte con el estado actual del libro.
// A diferencia del dashboard, aquí "stock bajo" excluye los agotados:
// cada producto cae en exactamente una de las dos cuentas.
func (uc *UseCase) Build() *Data {
	products := uc.ledger.Products()

	d := &Data{
		GeneratedAt:     uc.now(),
		TotalProducts:   len(products),
		TotalStockValue: decimal.Zero,
		Categories:      uc.ledger.CategoryStats(),
	}
	for _, p := range products {
		d.TotalStock += p.Stock
		d.TotalStockValue = d.TotalStockValue.Add(p.InventoryValue())
		switch {
		case p.Stock == 0:
			d.OutOfStockCount++
		case p.IsLowStock():
			d.LowStockCount++
		}
	}

	movements := uc.ledger.Movements()
	if len(movements) > reportRecentMovements {
		movements = movements[:reportRecentMovements]
	}
	d.RecentMovements = movements
	return d
}

// CSV renderiza el reporte como CSV: filas de encabezado con fecha de
// generación y totales, luego el desglose por categoría.
func (uc *UseCase) CSV() ([]byte, error) {
	d := uc.Build()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Reporte de inventario"},
		{"Generado", d.GeneratedAt.Format("2006-01-02 15:04")},
		{"Total de productos", strconv.Itoa(d.TotalProducts)},
		{"Valor total del inventario", FormatCurrency(d.TotalStockValue)},
		{"Productos con stock bajo", strconv.Itoa(d.LowStockCount)},
		{"Productos agotados", strconv.Itoa(d.OutOfStockCount)},
		{},
		{"Desglose por categoría"},
		{"categoria", "productos", "stock_total", "valor_total", "stock_bajo", "agotados"},
	}
	for _, c := range d.Categories {
		rows = append(rows, []string{
			c.Category,
			strconv.Itoa(c.Count),
			strconv.Itoa(c.TotalStock),
			FormatCurrency(c.TotalValue),
			strconv.Itoa(c.LowStock),
			strconv.Itoa(c.OutOfStock),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("report: escribir csv: %w", err)
	}
	return buf.Bytes(), nil
}

// PDF renderiza el reporte con el generador inyectado.
func (uc *UseCase) PDF() ([]byte, error) {
	return uc.pdf.GenerateInventoryPDF(uc.Build())
}

// FileName nombre de descarga del reporte con la fecha de generación.
func (uc *UseCase) FileName(ext string) string {
	return fmt.Sprintf("inventory_report_%s.%s", uc.now().Format("2006-01-02"), ext)
}

var currencyPrinter = message.NewPrinter(language.Korean)

// FormatCurrency formatea un monto en wones con separador de miles, ej: ₩1,234,500.
func FormatCurrency(d decimal.Decimal) string {
	return currencyPrinter.Sprintf("₩%v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(0)))
}
