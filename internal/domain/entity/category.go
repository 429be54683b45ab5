package entity

// Category clasifica un producto dentro del catálogo de la tienda.
// El conjunto es cerrado: la colección (inventario) valida la pertenencia,
// la entidad Product no.
type Category string

const (
	CategoryComputing   Category = "computing"
	CategoryPeripherals Category = "peripherals"
	CategoryAudio       Category = "audio"
	CategoryOther       Category = "other"
)

// ValidCategories devuelve el conjunto cerrado de categorías, en orden estable.
func ValidCategories() []Category {
	return []Category{CategoryComputing, CategoryPeripherals, CategoryAudio, CategoryOther}
}

// IsValid indica si la categoría pertenece al conjunto cerrado.
func (c Category) IsValid() bool {
	switch c {
	case CategoryComputing, CategoryPeripherals, CategoryAudio, CategoryOther:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }
