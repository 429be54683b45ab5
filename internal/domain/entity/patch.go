package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tienda-tech/inventario/internal/domain"
)

// ProductPatch describe una actualización parcial de producto: solo los
// campos no-nil se aplican. Sustituye al paso dinámico de pares campo/valor
// por una estructura explícita.
type ProductPatch struct {
	Name        *string
	Price       *decimal.Decimal
	Quantity    *int
	Category    *Category
	Description *string
}

// IsEmpty indica si el parche no trae ningún campo.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Quantity == nil &&
		p.Category == nil && p.Description == nil
}

// Validate re-verifica las restricciones de la entidad sobre los campos
// presentes. Se llama ANTES de tocar el almacenamiento: un mutador que
// fallaría después de un commit dejaría memoria y BD divergentes.
func (p ProductPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: el nombre no puede estar vacío", domain.ErrValidation)
	}
	if p.Price != nil && !p.Price.IsPositive() {
		return fmt.Errorf("%w: el precio debe ser mayor a 0", domain.ErrValidation)
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrValidation)
	}
	return nil
}

// Apply traslada los campos presentes al producto vía sus mutadores.
// Con un parche ya validado ningún mutador puede fallar.
func (p ProductPatch) Apply(product *Product) error {
	if p.Name != nil {
		if err := product.SetName(*p.Name); err != nil {
			return err
		}
	}
	if p.Price != nil {
		if err := product.SetPrice(*p.Price); err != nil {
			return err
		}
	}
	if p.Quantity != nil {
		if err := product.SetQuantity(*p.Quantity); err != nil {
			return err
		}
	}
	if p.Category != nil {
		product.SetCategory(*p.Category)
	}
	if p.Description != nil {
		product.SetDescription(*p.Description)
	}
	return nil
}
