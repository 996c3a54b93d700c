package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/ledger"
	"github.com/jhoicas/pos-ledger/internal/seed"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stats — resumen derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_TotalesSobreDatosDeFabrica(t *testing.T) {
	l, _ := seededLedger()
	s := l.Stats()

	assert.Equal(t, 8, s.TotalProducts)
	assert.Equal(t, 45+32+8+25+2+50+60+15, s.TotalStock,
		"TotalStock debe ser la suma de los stocks del catálogo")

	// sum(stock * precio) del seed
	esperado := decimal.NewFromInt(45*1500 + 32*1500 + 8*2000 + 25*1200 + 2*3000 + 50*800 + 60*1000 + 15*1800)
	assert.True(t, s.TotalValue.Equal(esperado), "TotalValue = %s, esperado %s", s.TotalValue, esperado)

	assert.Equal(t, 2, s.LowStockCount, "Chocopie y Tissue")
	require.Len(t, s.LowStockProducts, 2)
	assert.Equal(t, 0, s.OutOfStockCount)

	assert.Equal(t, 4, s.CategoryCount)
	assert.Equal(t, []string{"Bebidas", "Snacks", "Comida instantánea", "Hogar"}, s.Categories,
		"las categorías van en orden de primera aparición")
}

func TestStats_VentasDeHoyPorRangoReal(t *testing.T) {
	// Reloj fijo el mismo día de los pedidos del seed (2024-11-15).
	l := ledger.NewWithClock(func() time.Time {
		return time.Date(2024, 11, 15, 23, 30, 0, 0, time.UTC)
	})
	l.Restore(seed.Snapshot())

	s := l.Stats()
	assert.Equal(t, 7, s.TodayOrderCount, "los 7 pedidos del seed son del 15 de noviembre")
	assert.True(t, s.TodaySales.Equal(decimal.NewFromInt(3000+2000+3600+1500+2000+1800+1600)),
		"TodaySales = %s", s.TodaySales)
}

func TestStats_VentasDeHoyExcluyeOtrosDias(t *testing.T) {
	// Un día después de los pedidos del seed: nada cuenta como "hoy".
	l := ledger.NewWithClock(func() time.Time {
		return time.Date(2024, 11, 16, 10, 0, 0, 0, time.UTC)
	})
	l.Restore(seed.Snapshot())

	s := l.Stats()
	assert.Equal(t, 0, s.TodayOrderCount)
	assert.True(t, s.TodaySales.IsZero())
}

func TestStats_ProductoAgotadoCuentaComoOutOfStock(t *testing.T) {
	l, _ := seededLedger()
	_, err := l.SetStock(5, 0, "", "conteo")
	require.NoError(t, err)

	s := l.Stats()
	assert.Equal(t, 1, s.OutOfStockCount)
	// En el dashboard, un agotado sigue siendo "stock bajo" (stock <= minStock).
	assert.Equal(t, 2, s.LowStockCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// CategoryStats — desglose por categoría
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryStats_AgregadosPorCategoria(t *testing.T) {
	l, _ := seededLedger()

	stats := l.CategoryStats()
	require.Len(t, stats, 4)

	// Orden de primera aparición en el catálogo.
	assert.Equal(t, "Bebidas", stats[0].Category)
	assert.Equal(t, 3, stats[0].Count, "Cola, Cider y Water")
	assert.Equal(t, 45+32+60, stats[0].TotalStock)
	assert.True(t, stats[0].TotalValue.Equal(decimal.NewFromInt(45*1500+32*1500+60*1000)))
	assert.Equal(t, 0, stats[0].LowStock)

	assert.Equal(t, "Snacks", stats[1].Category)
	assert.Equal(t, 1, stats[1].LowStock, "Chocopie (8/15)")

	assert.Equal(t, "Hogar", stats[3].Category)
	assert.Equal(t, 1, stats[3].LowStock, "Tissue (2/5)")
	assert.Equal(t, 0, stats[3].OutOfStock)
}

func TestCategoryStats_AgotadoNoCuentaComoBajo(t *testing.T) {
	l, _ := seededLedger()
	_, err := l.SetStock(5, 0, "", "")
	require.NoError(t, err)

	stats := l.CategoryStats()
	hogar := stats[3]
	require.Equal(t, "Hogar", hogar.Category)
	assert.Equal(t, 1, hogar.OutOfStock)
	assert.Equal(t, 0, hogar.LowStock, "en el desglose cada producto cae en exactamente una cuenta")
}

// ──────────────────────────────────────────────────────────────────────────────
// SortProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestSortProducts_PorNombre(t *testing.T) {
	l, _ := seededLedger()
	out := ledger.SortProducts(l.Products(), ledger.SortByName)

	require.Len(t, out, 8)
	assert.Equal(t, "Chocopie", out[0].Name)
	assert.Equal(t, "Water", out[7].Name)
}

func TestSortProducts_PorPrecioAscendente(t *testing.T) {
	l, _ := seededLedger()
	out := ledger.SortProducts(l.Products(), ledger.SortByPrice)

	for i := 1; i < len(out); i++ {
		assert.False(t, out[i].Price.LessThan(out[i-1].Price),
			"el precio debe ser no-decreciente")
	}
	assert.Equal(t, "Gum", out[0].Name, "Gum (800) es el más barato")
}

func TestSortProducts_PorStockDescendente(t *testing.T) {
	l, _ := seededLedger()
	out := ledger.SortProducts(l.Products(), ledger.SortByStock)

	assert.Equal(t, "Water", out[0].Name, "Water (60) tiene más stock")
	assert.Equal(t, "Tissue", out[7].Name, "Tissue (2) tiene menos stock")
}

func TestSortProducts_ClaveDesconocidaNoReordena(t *testing.T) {
	l, _ := seededLedger()
	original := l.Products()
	out := ledger.SortProducts(original, "precio_mayorista")
	assert.Equal(t, original, out)
}

func TestSortProducts_NoMutaLaListaOriginal(t *testing.T) {
	l, _ := seededLedger()
	original := l.Products()
	primero := original[0].Name

	_ = ledger.SortProducts(original, ledger.SortByName)
	assert.Equal(t, primero, original[0].Name, "SortProducts devuelve una copia")
}
