package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tienda-tech/inventario/internal/application/usecase"
	"github.com/tienda-tech/inventario/internal/domain"
	"github.com/tienda-tech/inventario/internal/domain/entity"
	"github.com/tienda-tech/inventario/internal/interfaces/console"
	"github.com/tienda-tech/inventario/pkg/logger"
)

// memRepo backend mínimo en memoria para montar el inventario del menú.
type memRepo struct {
	rows map[int]*entity.Product
}

func newMemRepo() *memRepo { return &memRepo{rows: make(map[int]*entity.Product)} }

func (m *memRepo) Insert(p *entity.Product) error {
	if _, ok := m.rows[p.ID()]; ok {
		return domain.ErrDuplicateID
	}
	m.rows[p.ID()] = p
	return nil
}

func (m *memRepo) GetAll() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range m.rows {
		list = append(list, p)
	}
	return list, nil
}

func (m *memRepo) GetByID(id int) (*entity.Product, error) { return m.rows[id], nil }

func (m *memRepo) SearchByName(part string) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range m.rows {
		if strings.Contains(p.Name(), part) {
			list = append(list, p)
		}
	}
	return list, nil
}

func (m *memRepo) GetByCategory(c entity.Category) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range m.rows {
		if p.Category() == c {
			list = append(list, p)
		}
	}
	return list, nil
}

func (m *memRepo) Update(id int, patch entity.ProductPatch) (bool, error) {
	p, ok := m.rows[id]
	if !ok || patch.IsEmpty() {
		return false, nil
	}
	return true, patch.Apply(p)
}

func (m *memRepo) Delete(id int) (bool, error) {
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *memRepo) Exists(id int) (bool, error) {
	_, ok := m.rows[id]
	return ok, nil
}

// runMenu ejecuta el menú con las líneas de entrada dadas y devuelve la salida.
func runMenu(t *testing.T, inv *usecase.InventoryUseCase, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	console.NewMenu(inv, in, &out).Run()
	return out.String()
}

func newInventory(t *testing.T) *usecase.InventoryUseCase {
	t.Helper()
	return usecase.NewInventoryUseCase(newMemRepo(), logger.NewNop())
}

func TestMenu_AgregarYListar(t *testing.T) {
	inv := newInventory(t)

	out := runMenu(t, inv,
		"2", // agregar
		"1", "Mouse Logitech", "99.90", "4", "peripherals", "inalámbrico",
		"1", // listar
		"9", // salir
	)

	assert.Contains(t, out, `Producto "Mouse Logitech" agregado exitosamente`)
	assert.Contains(t, out, "Total: 1 productos")
	assert.Contains(t, out, "Precio: $99.90")

	p := inv.ByID(1)
	require.NotNil(t, p)
	assert.Equal(t, 4, p.Quantity())
}

func TestMenu_CategoriaInvalidaNoAgrega(t *testing.T) {
	inv := newInventory(t)

	out := runMenu(t, inv,
		"2",
		"1", "Silla", "10", "2", "muebles", "",
		"9",
	)

	assert.Contains(t, out, "Error:")
	assert.Equal(t, 0, inv.Len())
}

func TestMenu_EliminarConConfirmacion(t *testing.T) {
	inv := newInventory(t)
	_, err := inv.AddProduct(1, "Mouse", decimal.NewFromInt(10), 3, entity.CategoryPeripherals, "")
	require.NoError(t, err)

	// Primero cancela, luego confirma.
	out := runMenu(t, inv,
		"3", "1", "n",
		"3", "1", "s",
		"9",
	)

	assert.Contains(t, out, "Operación cancelada")
	assert.Contains(t, out, "Producto eliminado exitosamente")
	assert.Equal(t, 0, inv.Len())
}

func TestMenu_ActualizarCamposEnBlancoNoCambian(t *testing.T) {
	inv := newInventory(t)
	_, err := inv.AddProduct(1, "Mouse", decimal.NewFromInt(10), 3, entity.CategoryPeripherals, "viejo")
	require.NoError(t, err)

	// Solo se cambia la cantidad; el resto queda en blanco.
	out := runMenu(t, inv,
		"4", "1", "", "", "8", "", "",
		"9",
	)

	assert.Contains(t, out, "Producto actualizado exitosamente")
	p := inv.ByID(1)
	assert.Equal(t, "Mouse", p.Name())
	assert.Equal(t, 8, p.Quantity())
	assert.Equal(t, "viejo", p.Description())
}

func TestMenu_BuscarYEstadisticas(t *testing.T) {
	inv := newInventory(t)
	_, err := inv.AddProduct(1, "Laptop Dell", decimal.NewFromInt(1299), 2, entity.CategoryComputing, "")
	require.NoError(t, err)

	out := runMenu(t, inv,
		"5", "laptop",
		"8",
		"9",
	)

	assert.Contains(t, out, "Se encontraron 1 productos")
	assert.Contains(t, out, "ID: 1 | Laptop Dell - $1299.00 | Stock: 2")
	assert.Contains(t, out, "Valor total del inventario: $2598.00")
}

func TestMenu_EntradaAgotadaSale(t *testing.T) {
	inv := newInventory(t)
	// Sin más entrada el menú termina en lugar de ciclar.
	out := runMenu(t, inv, "7")
	assert.Contains(t, out, "No hay productos con stock menor o igual a 5")
	assert.Contains(t, out, "Hasta luego!")
}
