// seed puebla el almacén JSON a partir de archivos CSV exportados del sistema
// anterior (codificados en ISO-8859-1).
//
// Uso: go run ./cmd/seed [inventario.csv [proveedores.csv]]
// Por defecto busca inventario.csv y proveedores.csv en el directorio actual.
// Escribe las colecciones en DATA_DIR (./data por defecto).
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/jsonstore"
	"github.com/jhoicas/almacen-api/pkg/config"
)

func main() {
	itemsPath := "inventario.csv"
	suppliersPath := "proveedores.csv"
	if len(os.Args) > 1 {
		itemsPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		suppliersPath = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	store, err := jsonstore.New(cfg.Store.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Preparar almacén: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()

	items, err := readItems(itemsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer %s: %v\n", itemsPath, err)
		os.Exit(1)
	}
	if err := store.Items.Replace(ctx, items); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir inventario: %v\n", err)
		os.Exit(1)
	}

	suppliers, err := readSuppliers(suppliersPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer %s: %v\n", suppliersPath, err)
		os.Exit(1)
	}
	if err := store.Suppliers.Replace(ctx, suppliers); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir proveedores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sembrado %s: %d artículos, %d proveedores\n",
		cfg.Store.DataDir, len(items), len(suppliers))
}

// readCSV abre un CSV ISO-8859-1 y devuelve sus filas sin la cabecera.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

// readItems espera columnas: id, nombre, cantidad, nivel_reposicion, precio.
func readItems(path string) ([]entity.InventoryItem, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	items := make([]entity.InventoryItem, 0, len(rows))
	for i, row := range rows {
		if len(row) < 5 {
			return nil, fmt.Errorf("fila %d: se esperaban 5 columnas, hay %d", i+2, len(row))
		}
		qty, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("fila %d: cantidad inválida %q", i+2, row[2])
		}
		level, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("fila %d: nivel de reposición inválido %q", i+2, row[3])
		}
		price, err := decimal.NewFromString(strings.TrimSpace(row[4]))
		if err != nil {
			return nil, fmt.Errorf("fila %d: precio inválido %q", i+2, row[4])
		}
		items = append(items, entity.InventoryItem{
			ID:           strings.TrimSpace(row[0]),
			Name:         strings.TrimSpace(row[1]),
			Quantity:     qty,
			ReorderLevel: level,
			Price:        price,
		})
	}
	return items, nil
}

// readSuppliers espera columnas: id, nombre, contacto, telefono, direccion.
func readSuppliers(path string) ([]entity.Supplier, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	suppliers := make([]entity.Supplier, 0, len(rows))
	for i, row := range rows {
		if len(row) < 5 {
			return nil, fmt.Errorf("fila %d: se esperaban 5 columnas, hay %d", i+2, len(row))
		}
		suppliers = append(suppliers, entity.Supplier{
			ID:      strings.TrimSpace(row[0]),
			Name:    strings.TrimSpace(row[1]),
			Contact: strings.TrimSpace(row[2]),
			Phone:   strings.TrimSpace(row[3]),
			Address: strings.TrimSpace(row[4]),
		})
	}
	return suppliers, nil
}
