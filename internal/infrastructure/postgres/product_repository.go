package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tienda-tech/inventario/internal/domain"
	"github.com/tienda-tech/inventario/internal/domain/entity"
	"github.com/tienda-tech/inventario/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, price, quantity, category, description`

// Insert persiste un producto nuevo. La clave primaria detecta duplicados
// incluso cuando otro proceso insertó el mismo id.
func (r *ProductRepo) Insert(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, quantity, category, description)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID(), product.Name(), product.Price(), product.Quantity(),
		string(product.Category()), product.Description(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetAll devuelve todos los productos ordenados por id ascendente.
func (r *ProductRepo) GetAll() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("get all products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// GetByID devuelve nil, nil cuando no existe la fila.
func (r *ProductRepo) GetByID(id int) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// SearchByName búsqueda parcial por nombre (LIKE, colación del backend).
func (r *ProductRepo) SearchByName(part string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name LIKE $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, "%"+part+"%")
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// GetByCategory devuelve los productos con categoría exacta.
func (r *ProductRepo) GetByCategory(category entity.Category) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, string(category))
	if err != nil {
		return nil, fmt.Errorf("get products by category: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Update aplica solo los campos presentes del parche, construyendo el SET
// dinámicamente. Devuelve false con parche vacío o sin fila coincidente.
func (r *ProductRepo) Update(id int, patch entity.ProductPatch) (bool, error) {
	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Quantity != nil {
		add("quantity", *patch.Quantity)
	}
	if patch.Category != nil {
		add("category", string(*patch.Category))
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if len(sets) == 0 {
		return false, nil
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete devuelve true solo si se eliminó una fila.
func (r *ProductRepo) Delete(id int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Exists verifica existencia por id.
func (r *ProductRepo) Exists(id int) (bool, error) {
	var one int
	err := r.q.QueryRow(context.Background(), `SELECT 1 FROM products WHERE id = $1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("product exists: %w", err)
	}
	return true, nil
}

// scanProduct rehidrata una fila como entidad. Las filas siempre se escriben
// validadas, así que el constructor no debería fallar aquí.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		id       int
		name     string
		price    decimal.Decimal
		quantity int
		category string
		desc     string
	)
	if err := row.Scan(&id, &name, &price, &quantity, &category, &desc); err != nil {
		return nil, err
	}
	p, err := entity.NewProduct(id, name, price, quantity, entity.Category(category), desc)
	if err != nil {
		return nil, fmt.Errorf("fila inconsistente id=%d: %w", id, err)
	}
	return p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
