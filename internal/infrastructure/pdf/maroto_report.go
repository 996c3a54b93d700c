// Package pdf implementa la generación del Reporte de Inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda │ Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / stock / valor / bajos / agotados      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Prod. | Stock | Valor | Bajos | Agotados│
//	│  ─────────────────────────────────────────────────────────  │
//	│  MOVIMIENTOS RECIENTES: fecha | producto | tipo | delta     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/pos-ledger/internal/application/report"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/ledger"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	storeName string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(storeName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{storeName: storeName}
}

// GenerateInventoryPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(data *report.Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("DESGLOSE POR CATEGORÍA"))
	m.AddRows(categoryHeaderRow())
	for _, r := range categoryRows(data.Categories) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitleRow("MOVIMIENTOS RECIENTES"))
	m.AddRows(movementHeaderRow())
	for _, r := range movementRows(data.RecentMovements) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y fecha de generación (der).
func (g *MarotoReportGenerator) headerRow(data *report.Data) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales generales del inventario.
func summaryRow(data *report.Data) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 6}),
		)
	}
	return row.New(14).Add(
		col.New(1),
		kpi("Productos", strconv.Itoa(data.TotalProducts)),
		kpi("Stock total", strconv.Itoa(data.TotalStock)),
		kpi("Valor total", report.FormatCurrency(data.TotalStockValue)),
		kpi("Stock bajo", strconv.Itoa(data.LowStockCount)),
		kpi("Agotados", strconv.Itoa(data.OutOfStockCount)),
		col.New(1),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		})),
	)
}

// categoryHeaderRow: cabecera de la tabla de categorías.
func categoryHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 4, align.Left),
		h("Prod.", 1, align.Center),
		h("Stock", 2, align.Right),
		h("Valor", 3, align.Right),
		h("Bajos", 1, align.Center),
		h("Agot.", 1, align.Center),
	)
}

// categoryRows: una fila por categoría.
func categoryRows(stats []ledger.CategoryStat) []core.Row {
	result := make([]core.Row, 0, len(stats))
	for _, c := range stats {
		result = append(result, row.New(7).Add(
			col.New(4).Add(cell(c.Category, align.Left)),
			col.New(1).Add(cell(strconv.Itoa(c.Count), align.Center)),
			col.New(2).Add(cell(strconv.Itoa(c.TotalStock), align.Right)),
			col.New(3).Add(cell(report.FormatCurrency(c.TotalValue), align.Right)),
			col.New(1).Add(cell(strconv.Itoa(c.LowStock), align.Center)),
			col.New(1).Add(cell(strconv.Itoa(c.OutOfStock), align.Center)),
		))
	}
	return result
}

// movementHeaderRow: cabecera de la tabla de movimientos.
func movementHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Producto", 4, align.Left),
		h("Tipo", 2, align.Center),
		h("Delta", 1, align.Right),
		h("Stock", 2, align.Right),
	)
}

// movementRows: una fila por movimiento reciente.
func movementRows(movements []entity.StockMovement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		result = append(result, row.New(7).Add(
			col.New(3).Add(cell(mv.Date.Format("02/01/2006 15:04"), align.Left)),
			col.New(4).Add(cell(mv.ProductName, align.Left)),
			col.New(2).Add(cell(mv.Type, align.Center)),
			col.New(1).Add(cell(fmt.Sprintf("%+d", mv.Quantity), align.Right)),
			col.New(2).Add(cell(fmt.Sprintf("%d → %d", mv.PreviousStock, mv.CurrentStock), align.Right)),
		))
	}
	return result
}

func cell(s string, a align.Type) core.Component {
	return text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1})
}
