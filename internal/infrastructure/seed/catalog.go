// Package seed contiene el catálogo inicial de la tienda y la migración
// one-shot que lo vuelca a la base de datos. No forma parte del contrato
// estable del inventario: es el bootstrap del catálogo histórico.
package seed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tienda-tech/inventario/internal/domain"
	"github.com/tienda-tech/inventario/internal/domain/entity"
	"github.com/tienda-tech/inventario/internal/domain/repository"
)

// Etiquetas de stock que trae el catálogo semilla.
const (
	stockAvailable = "Disponible"
	stockLimited   = "Stock Limitado"
)

// Item una entrada del catálogo semilla, con el precio como cadena de
// presentación ("$1,299") tal como figura en el catálogo de lanzamiento.
type Item struct {
	Key         string
	Name        string
	PriceLabel  string
	StockLabel  string
	Description string
}

// Catalog devuelve el catálogo semilla fijo de seis artículos.
func Catalog() []Item {
	return []Item{
		{"laptop", "Laptop Dell XPS 15", "$1,299", stockAvailable,
			"Laptop de alto rendimiento con procesador Intel i7, 16GB RAM, 512GB SSD"},
		{"mouse", "Mouse Logitech MX Master 3", "$99", stockAvailable,
			"Mouse inalámbrico ergonómico con sensor de alta precisión"},
		{"teclado", "Teclado Mecánico Corsair K95", "$179", stockAvailable,
			"Teclado mecánico RGB con switches Cherry MX"},
		{"monitor", "Monitor LG UltraWide 34\"", "$599", stockAvailable,
			"Monitor ultrawide 21:9, resolución 3440x1440, 144Hz"},
		{"audifonos", "Audífonos Sony WH-1000XM5", "$399", stockAvailable,
			"Audífonos inalámbricos con cancelación de ruido activa"},
		{"webcam", "Webcam Logitech C920", "$79", stockLimited,
			"Webcam Full HD 1080p con micrófono estéreo"},
	}
}

// ids asignación determinística de id por clave del catálogo. Un id derivado
// de un hash no es estable entre procesos ni libre de colisiones, así que el
// mapa es explícito.
var ids = map[string]int{
	"laptop":    1001,
	"mouse":     1002,
	"teclado":   1003,
	"monitor":   1004,
	"audifonos": 1005,
	"webcam":    1006,
}

// categories asignación fija clave del catálogo -> categoría de la tienda.
var categories = map[string]entity.Category{
	"laptop":    entity.CategoryComputing,
	"mouse":     entity.CategoryPeripherals,
	"teclado":   entity.CategoryPeripherals,
	"monitor":   entity.CategoryComputing,
	"audifonos": entity.CategoryAudio,
	"webcam":    entity.CategoryPeripherals,
}

// CategoryFor devuelve la categoría de una clave del catálogo; "other" si no
// está en el mapa.
func CategoryFor(key string) entity.Category {
	if cat, ok := categories[key]; ok {
		return cat
	}
	return entity.CategoryOther
}

// IDFor devuelve el id asignado a una clave del catálogo, o 0 si no existe.
func IDFor(key string) int {
	return ids[key]
}

// QuantityFor deriva la cantidad inicial desde la etiqueta de stock del
// catálogo: 10 si está disponible, 3 en cualquier otro caso.
func QuantityFor(stockLabel string) int {
	if stockLabel == stockAvailable {
		return 10
	}
	return 3
}

// ParsePrice convierte un precio de presentación ("$1,299") a decimal.
func ParsePrice(label string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(label))
	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: precio %q", domain.ErrValidation, label)
	}
	return price, nil
}

// Migrate inserta el catálogo semilla en el backend. Un id ya existente se
// tolera como no-op, así que re-ejecutar la migración no cambia nada.
// Devuelve cuántas filas se insertaron realmente.
func Migrate(repo repository.ProductRepository) (int, error) {
	migrated := 0
	for _, item := range Catalog() {
		price, err := ParsePrice(item.PriceLabel)
		if err != nil {
			return migrated, fmt.Errorf("migrar %s: %w", item.Key, err)
		}
		product, err := entity.NewProduct(
			IDFor(item.Key), item.Name, price,
			QuantityFor(item.StockLabel), CategoryFor(item.Key), item.Description,
		)
		if err != nil {
			return migrated, fmt.Errorf("migrar %s: %w", item.Key, err)
		}
		if err := repo.Insert(product); err != nil {
			if errors.Is(err, domain.ErrDuplicateID) {
				continue
			}
			return migrated, fmt.Errorf("migrar %s: %w", item.Key, err)
		}
		migrated++
	}
	return migrated, nil
}
