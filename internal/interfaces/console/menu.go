// Package console implementa el menú interactivo de gestión del inventario,
// el segundo consumidor del inventario junto al storefront web.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tienda-tech/inventario/internal/application/usecase"
	"github.com/tienda-tech/inventario/internal/domain/entity"
)

// Menu menú interactivo sobre el inventario. Lee de in y escribe en out para
// poder probarse con buffers.
type Menu struct {
	inv *usecase.InventoryUseCase
	in  *bufio.Scanner
	out io.Writer
}

// NewMenu construye el menú.
func NewMenu(inv *usecase.InventoryUseCase, in io.Reader, out io.Writer) *Menu {
	return &Menu{inv: inv, in: bufio.NewScanner(in), out: out}
}

// Run ejecuta el bucle principal hasta que el usuario elige salir o se agota
// la entrada.
func (m *Menu) Run() {
	for {
		m.printMenu()
		switch m.prompt("Selecciona una opción (1-9): ") {
		case "1":
			m.showAll()
		case "2":
			m.addProduct()
		case "3":
			m.removeProduct()
		case "4":
			m.updateProduct()
		case "5":
			m.searchProduct()
		case "6":
			m.showByCategory()
		case "7":
			m.showLowStock()
		case "8":
			m.showStats()
		case "9", "":
			fmt.Fprintln(m.out, "Hasta luego!")
			return
		default:
			fmt.Fprintln(m.out, "Opción no válida. Intenta de nuevo.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, strings.Repeat("=", 60))
	fmt.Fprintln(m.out, " SISTEMA DE GESTIÓN DE INVENTARIO - TIENDA TECH")
	fmt.Fprintln(m.out, strings.Repeat("=", 60))
	fmt.Fprintln(m.out, "  1. Ver todos los productos")
	fmt.Fprintln(m.out, "  2. Agregar nuevo producto")
	fmt.Fprintln(m.out, "  3. Eliminar producto")
	fmt.Fprintln(m.out, "  4. Actualizar producto")
	fmt.Fprintln(m.out, "  5. Buscar producto por nombre")
	fmt.Fprintln(m.out, "  6. Ver productos por categoría")
	fmt.Fprintln(m.out, "  7. Ver productos con bajo stock")
	fmt.Fprintln(m.out, "  8. Ver estadísticas del inventario")
	fmt.Fprintln(m.out, "  9. Salir")
}

// prompt muestra la etiqueta y devuelve la línea ingresada, sin espacios.
func (m *Menu) prompt(label string) string {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return ""
	}
	return strings.TrimSpace(m.in.Text())
}

func (m *Menu) showAll() {
	products := m.inv.All()
	if len(products) == 0 {
		fmt.Fprintln(m.out, "No hay productos en el inventario.")
		return
	}
	fmt.Fprintf(m.out, "Total: %d productos\n", len(products))
	for _, p := range products {
		fmt.Fprintf(m.out, "ID: %d\n  Nombre: %s\n  Precio: $%s\n  Cantidad: %d\n  Categoría: %s\n  Descripción: %s\n",
			p.ID(), p.Name(), p.Price().StringFixed(2), p.Quantity(), p.Category(), p.Description())
	}
}

func (m *Menu) addProduct() {
	id, err := strconv.Atoi(m.prompt("ID del producto: "))
	if err != nil {
		fmt.Fprintln(m.out, "Error: el ID debe ser un número")
		return
	}
	name := m.prompt("Nombre del producto: ")
	price, err := decimal.NewFromString(m.prompt("Precio del producto: $"))
	if err != nil {
		fmt.Fprintln(m.out, "Error: el precio debe ser numérico")
		return
	}
	quantity, err := strconv.Atoi(m.prompt("Cantidad en stock: "))
	if err != nil {
		fmt.Fprintln(m.out, "Error: la cantidad debe ser un número")
		return
	}
	fmt.Fprintf(m.out, "Categorías válidas: %v\n", entity.ValidCategories())
	category := entity.Category(strings.ToLower(m.prompt("Categoría: ")))
	description := m.prompt("Descripción (opcional): ")

	product, err := m.inv.AddProduct(id, name, price, quantity, category, description)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Producto %q agregado exitosamente\n", product.Name())
}

func (m *Menu) removeProduct() {
	id, err := strconv.Atoi(m.prompt("ID del producto a eliminar: "))
	if err != nil {
		fmt.Fprintln(m.out, "Error: el ID debe ser un número")
		return
	}
	product := m.inv.ByID(id)
	if product == nil {
		fmt.Fprintf(m.out, "No existe producto con ID %d\n", id)
		return
	}
	fmt.Fprintf(m.out, "Producto a eliminar: %s\n", product.Name())
	if m.prompt("¿Estás seguro? (s/n): ") != "s" {
		fmt.Fprintln(m.out, "Operación cancelada")
		return
	}
	removed, err := m.inv.RemoveProduct(id)
	if err != nil || !removed {
		fmt.Fprintln(m.out, "Error al eliminar el producto")
		return
	}
	fmt.Fprintln(m.out, "Producto eliminado exitosamente")
}

func (m *Menu) updateProduct() {
	id, err := strconv.Atoi(m.prompt("ID del producto a actualizar: "))
	if err != nil {
		fmt.Fprintln(m.out, "Error: el ID debe ser un número")
		return
	}
	product := m.inv.ByID(id)
	if product == nil {
		fmt.Fprintf(m.out, "No existe producto con ID %d\n", id)
		return
	}
	fmt.Fprintf(m.out, "Producto actual: %s\n", product.Name())
	fmt.Fprintln(m.out, "Deja en blanco los campos que no quieras modificar")

	var patch entity.ProductPatch
	if name := m.prompt(fmt.Sprintf("Nuevo nombre [%s]: ", product.Name())); name != "" {
		patch.Name = &name
	}
	if priceStr := m.prompt(fmt.Sprintf("Nuevo precio [$%s]: ", product.Price().StringFixed(2))); priceStr != "" {
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			fmt.Fprintln(m.out, "Error: el precio debe ser numérico")
			return
		}
		patch.Price = &price
	}
	if qtyStr := m.prompt(fmt.Sprintf("Nueva cantidad [%d]: ", product.Quantity())); qtyStr != "" {
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			fmt.Fprintln(m.out, "Error: la cantidad debe ser un número")
			return
		}
		patch.Quantity = &qty
	}
	if catStr := m.prompt(fmt.Sprintf("Nueva categoría [%s]: ", product.Category())); catStr != "" {
		cat := entity.Category(strings.ToLower(catStr))
		patch.Category = &cat
	}
	if desc := m.prompt(fmt.Sprintf("Nueva descripción [%s]: ", product.Description())); desc != "" {
		patch.Description = &desc
	}

	if patch.IsEmpty() {
		fmt.Fprintln(m.out, "No se realizaron cambios")
		return
	}
	updated, err := m.inv.UpdateProduct(id, patch)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	if !updated {
		fmt.Fprintln(m.out, "Error al actualizar el producto")
		return
	}
	fmt.Fprintln(m.out, "Producto actualizado exitosamente")
}

func (m *Menu) searchProduct() {
	term := m.prompt("Ingresa el nombre o parte del nombre a buscar: ")
	if term == "" {
		fmt.Fprintln(m.out, "Debes ingresar un término de búsqueda")
		return
	}
	results := m.inv.Search(term)
	if len(results) == 0 {
		fmt.Fprintf(m.out, "No se encontraron productos con %q\n", term)
		return
	}
	fmt.Fprintf(m.out, "Se encontraron %d productos:\n", len(results))
	for _, p := range results {
		fmt.Fprintln(m.out, p)
	}
}

func (m *Menu) showByCategory() {
	fmt.Fprintf(m.out, "Categorías disponibles: %v\n", entity.ValidCategories())
	category := entity.Category(strings.ToLower(m.prompt("Ingresa la categoría: ")))
	if !category.IsValid() {
		fmt.Fprintln(m.out, "Categoría no válida")
		return
	}
	products := m.inv.ByCategory(category)
	if len(products) == 0 {
		fmt.Fprintf(m.out, "No hay productos en la categoría %q\n", category)
		return
	}
	fmt.Fprintf(m.out, "Productos en %q:\n", category)
	for _, p := range products {
		fmt.Fprintln(m.out, p)
	}
}

func (m *Menu) showLowStock() {
	products := m.inv.LowStock(usecase.DefaultLowStockThreshold)
	if len(products) == 0 {
		fmt.Fprintf(m.out, "No hay productos con stock menor o igual a %d\n", usecase.DefaultLowStockThreshold)
		return
	}
	fmt.Fprintf(m.out, "Productos con stock <= %d:\n", usecase.DefaultLowStockThreshold)
	for _, p := range products {
		fmt.Fprintln(m.out, p)
	}
}

func (m *Menu) showStats() {
	stats := m.inv.Statistics()
	fmt.Fprintf(m.out, "Total de productos: %d\n", stats.TotalProducts)
	fmt.Fprintf(m.out, "Valor total del inventario: $%s\n", stats.TotalValue.StringFixed(2))
	fmt.Fprintln(m.out, "Productos por categoría:")
	for category, count := range stats.CountByCategory {
		fmt.Fprintf(m.out, "  - %s: %d productos\n", category, count)
	}
}
