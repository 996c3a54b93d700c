// Package snapshot implementa el almacén de snapshots en disco: tres slots
// nombrados (products, orders, stock_movements), cada uno un arreglo JSON que
// se escribe completo al apagar y se lee completo al arrancar.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/ledger"
)

// Nombres de los slots en disco.
const (
	slotProducts  = "products.json"
	slotOrders    = "orders.json"
	slotMovements = "stock_movements.json"
)

// Store almacén de snapshots sobre un directorio de datos.
type Store struct {
	dir string
}

// NewStore construye el almacén. No crea el directorio hasta el primer Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load lee los tres slots. Si ninguno existe devuelve ErrNoSnapshot para que
// el llamador siembre los datos iniciales. Un slot ausente carga como lista
// vacía; un slot malformado es un error (no hay versionado de esquema).
func (s *Store) Load() (ledger.Snapshot, error) {
	var snap ledger.Snapshot

	okProducts, err := loadSlot(filepath.Join(s.dir, slotProducts), &snap.Products)
	if err != nil {
		return ledger.Snapshot{}, err
	}
	okOrders, err := loadSlot(filepath.Join(s.dir, slotOrders), &snap.Orders)
	if err != nil {
		return ledger.Snapshot{}, err
	}
	okMovements, err := loadSlot(filepath.Join(s.dir, slotMovements), &snap.Movements)
	if err != nil {
		return ledger.Snapshot{}, err
	}

	if !okProducts && !okOrders && !okMovements {
		return ledger.Snapshot{}, domain.ErrNoSnapshot
	}
	return snap, nil
}

// Save escribe los tres slots completos. Cada slot se escribe a un archivo
// temporal y se renombra para no dejar un slot truncado a medias.
func (s *Store) Save(snap ledger.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: crear directorio: %w", err)
	}
	if err := saveSlot(filepath.Join(s.dir, slotProducts), snap.Products); err != nil {
		return err
	}
	if err := saveSlot(filepath.Join(s.dir, slotOrders), snap.Orders); err != nil {
		return err
	}
	return saveSlot(filepath.Join(s.dir, slotMovements), snap.Movements)
}

// Reset elimina los tres slots (reinicio a datos de fábrica).
func (s *Store) Reset() error {
	for _, slot := range []string{slotProducts, slotOrders, slotMovements} {
		if err := os.Remove(filepath.Join(s.dir, slot)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("snapshot: eliminar %s: %w", slot, err)
		}
	}
	return nil
}

func loadSlot(path string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("snapshot: leer %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("snapshot: decodificar %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

func saveSlot(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: codificar %s: %w", filepath.Base(path), err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("snapshot: escribir %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("snapshot: renombrar %s: %w", filepath.Base(path), err)
	}
	return nil
}
