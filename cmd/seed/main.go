// seed escribe los datos de fábrica de la tienda como un snapshot en disco,
// listo para que cmd/api arranque desde él.
//
// Uso: go run ./cmd/seed [directorio]
// Por defecto escribe en ./data.
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/pos-ledger/internal/infrastructure/snapshot"
	"github.com/jhoicas/pos-ledger/internal/seed"
)

func main() {
	dir := "./data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	store := snapshot.NewStore(dir)
	if err := store.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "limpiar snapshot previo: %v\n", err)
		os.Exit(1)
	}
	snap := seed.Snapshot()
	if err := store.Save(snap); err != nil {
		fmt.Fprintf(os.Stderr, "escribir snapshot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("snapshot escrito en %s (%d productos, %d pedidos, %d movimientos)\n",
		dir, len(snap.Products), len(snap.Orders), len(snap.Movements))
}
