package report_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/application/report"
	"github.com/jhoicas/pos-ledger/internal/ledger"
	"github.com/jhoicas/pos-ledger/internal/seed"
)

// fakePDF registra la llamada y devuelve bytes fijos.
type fakePDF struct {
	ultimo *report.Data
}

func (f *fakePDF) GenerateInventoryPDF(data *report.Data) ([]byte, error) {
	f.ultimo = data
	return []byte("%PDF-fake"), nil
}

func seededUseCase() (*report.UseCase, *fakePDF) {
	l := ledger.New()
	l.Restore(seed.Snapshot())
	pdf := &fakePDF{}
	return report.NewUseCase(l, pdf), pdf
}

// ──────────────────────────────────────────────────────────────────────────────
// Build
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_TotalesDelSeed(t *testing.T) {
	uc, _ := seededUseCase()
	d := uc.Build()

	assert.Equal(t, 8, d.TotalProducts)
	assert.Equal(t, 237, d.TotalStock)
	assert.True(t, d.TotalStockValue.Equal(decimal.NewFromInt(294500)),
		"valor total = %s", d.TotalStockValue)
	assert.Equal(t, 2, d.LowStockCount)
	assert.Equal(t, 0, d.OutOfStockCount)
	assert.Len(t, d.Categories, 4)
	assert.Len(t, d.RecentMovements, 4, "el seed trae 4 movimientos, bajo el tope de 20")
}

func TestBuild_AgotadoNoCuentaComoBajo(t *testing.T) {
	l := ledger.New()
	l.Restore(seed.Snapshot())
	_, err := l.SetStock(5, 0, "", "")
	require.NoError(t, err)

	uc := report.NewUseCase(l, &fakePDF{})
	d := uc.Build()
	assert.Equal(t, 1, d.OutOfStockCount)
	assert.Equal(t, 1, d.LowStockCount,
		"en el reporte cada producto cae en exactamente una de las dos cuentas")
}

// ──────────────────────────────────────────────────────────────────────────────
// CSV / PDF / nombre de archivo
// ──────────────────────────────────────────────────────────────────────────────

func TestCSV_EncabezadoYDesglose(t *testing.T) {
	uc, _ := seededUseCase()

	data, err := uc.CSV()
	require.NoError(t, err)
	csv := string(data)

	assert.True(t, strings.HasPrefix(csv, "Reporte de inventario\n"))
	assert.Contains(t, csv, "Total de productos,8")
	assert.Contains(t, csv, "Valor total del inventario,\"₩294,500\"",
		"el monto con separador de miles va entre comillas en CSV")
	assert.Contains(t, csv, "categoria,productos,stock_total,valor_total,stock_bajo,agotados")
	assert.Contains(t, csv, "Bebidas,3,137,")
	assert.Contains(t, csv, "Hogar,1,2,")
}

func TestPDF_DelegaEnElGenerador(t *testing.T) {
	uc, pdf := seededUseCase()

	data, err := uc.PDF()
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), data)
	require.NotNil(t, pdf.ultimo, "el generador recibe los datos construidos")
	assert.Equal(t, 8, pdf.ultimo.TotalProducts)
}

func TestFileName_IncluyeFechaYExtension(t *testing.T) {
	uc, _ := seededUseCase()

	name := uc.FileName("csv")
	assert.True(t, strings.HasPrefix(name, "inventory_report_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
	assert.Len(t, name, len("inventory_report_2006-01-02.csv"))
}

// ──────────────────────────────────────────────────────────────────────────────
// FormatCurrency
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatCurrency_SeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "₩1,234,500", report.FormatCurrency(decimal.NewFromInt(1234500)))
	assert.Equal(t, "₩0", report.FormatCurrency(decimal.Zero))
	assert.Equal(t, "₩800", report.FormatCurrency(decimal.NewFromInt(800)))
}
