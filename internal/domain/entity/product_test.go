package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tienda-tech/inventario/internal/domain"
	"github.com/tienda-tech/inventario/internal/domain/entity"
)

func newTestProduct(t *testing.T) *entity.Product {
	t.Helper()
	p, err := entity.NewProduct(1, "Mouse Logitech MX Master 3", decimal.NewFromFloat(99.0), 4, entity.CategoryPeripherals, "Mouse inalámbrico")
	require.NoError(t, err)
	return p
}

func TestNewProduct_CamposValidos(t *testing.T) {
	p := newTestProduct(t)

	assert.Equal(t, 1, p.ID())
	assert.Equal(t, "Mouse Logitech MX Master 3", p.Name())
	assert.True(t, p.Price().Equal(decimal.NewFromInt(99)))
	assert.Equal(t, 4, p.Quantity())
	assert.Equal(t, entity.CategoryPeripherals, p.Category())
	assert.Equal(t, "Mouse inalámbrico", p.Description())
}

func TestNewProduct_Invalido(t *testing.T) {
	cases := []struct {
		name     string
		pname    string
		price    decimal.Decimal
		quantity int
	}{
		{"nombre vacío", "", decimal.NewFromInt(10), 1},
		{"nombre solo espacios", "   ", decimal.NewFromInt(10), 1},
		{"precio cero", "Teclado", decimal.Zero, 1},
		{"precio negativo", "Teclado", decimal.NewFromInt(-5), 1},
		{"cantidad negativa", "Teclado", decimal.NewFromInt(10), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entity.NewProduct(1, tc.pname, tc.price, tc.quantity, entity.CategoryOther, "")
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestMutadores_Revalidan(t *testing.T) {
	p := newTestProduct(t)

	// Cada mutador re-verifica su restricción antes de aplicar el cambio.
	assert.ErrorIs(t, p.SetName("  "), domain.ErrValidation)
	assert.Equal(t, "Mouse Logitech MX Master 3", p.Name())

	assert.ErrorIs(t, p.SetPrice(decimal.Zero), domain.ErrValidation)
	assert.True(t, p.Price().Equal(decimal.NewFromInt(99)))

	assert.ErrorIs(t, p.SetQuantity(-1), domain.ErrValidation)
	assert.Equal(t, 4, p.Quantity())

	require.NoError(t, p.SetQuantity(0))
	assert.Equal(t, 0, p.Quantity())

	// Categoría y descripción se reemplazan sin validar: valida la colección.
	p.SetCategory(entity.Category("inventada"))
	assert.Equal(t, entity.Category("inventada"), p.Category())
	p.SetDescription("")
	assert.Equal(t, "", p.Description())
}

func TestString_FormatoResumen(t *testing.T) {
	p, err := entity.NewProduct(7, "Webcam Logitech C920", decimal.NewFromFloat(79.5), 3, entity.CategoryPeripherals, "")
	require.NoError(t, err)

	assert.Equal(t, "ID: 7 | Webcam Logitech C920 - $79.50 | Stock: 3", p.String())
}

func TestToRecord(t *testing.T) {
	p := newTestProduct(t)
	record := p.ToRecord()

	assert.Equal(t, 1, record["id"])
	assert.Equal(t, "Mouse Logitech MX Master 3", record["name"])
	assert.Equal(t, 4, record["quantity"])
	assert.Equal(t, "peripherals", record["category"])
}

func TestCategory_ConjuntoCerrado(t *testing.T) {
	for _, c := range entity.ValidCategories() {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, entity.Category("muebles").IsValid())
	assert.False(t, entity.Category("").IsValid())
	assert.False(t, entity.Category("Computing").IsValid(), "la comparación es sensible a mayúsculas")
}

func TestProductPatch_Validate(t *testing.T) {
	empty := ""
	negative := decimal.NewFromInt(-1)
	badQty := -3
	ok := "Monitor"

	assert.NoError(t, entity.ProductPatch{}.Validate())
	assert.NoError(t, entity.ProductPatch{Name: &ok}.Validate())
	assert.ErrorIs(t, entity.ProductPatch{Name: &empty}.Validate(), domain.ErrValidation)
	assert.ErrorIs(t, entity.ProductPatch{Price: &negative}.Validate(), domain.ErrValidation)
	assert.ErrorIs(t, entity.ProductPatch{Quantity: &badQty}.Validate(), domain.ErrValidation)
}

func TestProductPatch_Apply_SoloCamposPresentes(t *testing.T) {
	p := newTestProduct(t)

	qty := 0
	desc := "nueva descripción"
	patch := entity.ProductPatch{Quantity: &qty, Description: &desc}
	require.NoError(t, patch.Validate())
	require.NoError(t, patch.Apply(p))

	assert.Equal(t, 0, p.Quantity())
	assert.Equal(t, "nueva descripción", p.Description())
	// Los campos ausentes no se tocan.
	assert.Equal(t, "Mouse Logitech MX Master 3", p.Name())
	assert.True(t, p.Price().Equal(decimal.NewFromInt(99)))
}

func TestProductPatch_IsEmpty(t *testing.T) {
	assert.True(t, entity.ProductPatch{}.IsEmpty())
	name := "x"
	assert.False(t, entity.ProductPatch{Name: &name}.IsEmpty())
}
