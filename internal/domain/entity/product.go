package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tienda-tech/inventario/internal/domain"
)

// Product representa un artículo tecnológico de la tienda.
// El ID es inmutable; el resto de campos se modifica solo a través de los
// mutadores, que re-validan su restricción antes de aplicar el cambio.
// La unicidad del ID la garantiza el inventario (dueño del registro de IDs),
// no la entidad.
type Product struct {
	id          int
	name        string
	price       decimal.Decimal
	quantity    int
	category    Category
	description string
}

// NewProduct construye un producto validando nombre, precio y cantidad.
// La categoría no se valida aquí: es responsabilidad de la colección.
func NewProduct(id int, name string, price decimal.Decimal, quantity int, category Category, description string) (*Product, error) {
	p := &Product{id: id, category: category, description: description}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetQuantity(quantity); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) ID() int                { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Quantity() int          { return p.quantity }
func (p *Product) Category() Category     { return p.category }
func (p *Product) Description() string    { return p.description }

// SetName reemplaza el nombre. Falla si es vacío o solo espacios.
func (p *Product) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: el nombre no puede estar vacío", domain.ErrValidation)
	}
	p.name = name
	return nil
}

// SetPrice reemplaza el precio. Falla si no es mayor a 0.
func (p *Product) SetPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return fmt.Errorf("%w: el precio debe ser mayor a 0", domain.ErrValidation)
	}
	p.price = price
	return nil
}

// SetQuantity reemplaza la cantidad en stock. Falla si es negativa.
func (p *Product) SetQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrValidation)
	}
	p.quantity = quantity
	return nil
}

// SetCategory reemplaza la categoría sin validar: el inventario valida aguas arriba.
func (p *Product) SetCategory(category Category) {
	p.category = category
}

// SetDescription reemplaza la descripción (campo libre, opcional).
func (p *Product) SetDescription(description string) {
	p.description = description
}

// ToRecord devuelve una instantánea plana clave/valor de todos los campos,
// para persistencia y presentación.
func (p *Product) ToRecord() map[string]any {
	return map[string]any{
		"id":          p.id,
		"name":        p.name,
		"price":       p.price,
		"quantity":    p.quantity,
		"category":    string(p.category),
		"description": p.description,
	}
}

// String devuelve el resumen de una línea del producto.
func (p *Product) String() string {
	return fmt.Sprintf("ID: %d | %s - $%s | Stock: %d", p.id, p.name, p.price.StringFixed(2), p.quantity)
}
