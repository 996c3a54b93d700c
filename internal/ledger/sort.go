package ledger

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Claves de ordenamiento aceptadas por SortProducts.
const (
	SortByName     = "name"
	SortByPrice    = "price"
	SortByStock    = "stock"
	SortByCategory = "category"
)

// SortProducts devuelve una copia ordenada de la lista recibida.
// name y category comparan con colación Unicode (no por bytes), price asciende
// y stock desciende. Una clave desconocida devuelve la copia sin reordenar.
func SortProducts(list []entity.Product, key string) []entity.Product {
	out := make([]entity.Product, len(list))
	copy(out, list)

	switch key {
	case SortByName:
		c := collate.New(language.Und)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case SortByStock:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Stock > out[j].Stock
		})
	case SortByCategory:
		c := collate.New(language.Und)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Category, out[j].Category) < 0
		})
	}
	return out
}
