package repository

import "github.com/tienda-tech/inventario/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Cada operación es transaccional por sí sola; no existe transacción que
// abarque varias llamadas.
type ProductRepository interface {
	// Insert persiste un producto nuevo. Devuelve domain.ErrDuplicateID si ya
	// existe una fila con ese id (constraint de clave primaria).
	Insert(product *entity.Product) error
	// GetAll devuelve todas las filas ordenadas por id ascendente.
	GetAll() ([]*entity.Product, error)
	// GetByID devuelve nil, nil cuando no existe la fila.
	GetByID(id int) (*entity.Product, error)
	// SearchByName devuelve las filas cuyo nombre contiene la subcadena.
	SearchByName(part string) ([]*entity.Product, error)
	// GetByCategory devuelve las filas con categoría exacta.
	GetByCategory(category entity.Category) ([]*entity.Product, error)
	// Update aplica solo los campos presentes del parche. Devuelve false si el
	// parche viene vacío o ninguna fila coincide con el id.
	Update(id int, patch entity.ProductPatch) (bool, error)
	// Delete devuelve true solo si se eliminó una fila.
	Delete(id int) (bool, error)
	// Exists verifica existencia por id.
	Exists(id int) (bool, error)
}
