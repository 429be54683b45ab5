package usecase

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tienda-tech/inventario/internal/application/dto"
	"github.com/tienda-tech/inventario/internal/domain"
	"github.com/tienda-tech/inventario/internal/domain/entity"
	"github.com/tienda-tech/inventario/internal/domain/repository"
	"github.com/tienda-tech/inventario/pkg/logger"
)

// DefaultLowStockThreshold umbral de bajo stock que usan los consumidores.
const DefaultLowStockThreshold = 5

// InventoryUseCase es la fuente de verdad en memoria del catálogo: un espejo
// read-through/write-through del backend de almacenamiento. Toda mutación va
// primero a la BD y solo si ésta confirma se refleja en el mapa; así ninguna
// operación confirmada puede divergir entre memoria y almacenamiento.
//
// El registro de IDs usados es estado de la instancia (no global de proceso)
// y solo se muta vía AddProduct/RemoveProduct.
type InventoryUseCase struct {
	mu       sync.RWMutex
	products map[int]*entity.Product
	usedIDs  map[int]struct{}
	repo     repository.ProductRepository
	log      *logger.Logger
}

// NewInventoryUseCase construye el inventario y lo puebla completo desde la BD
// (una sola carga, sin lazy loading).
func NewInventoryUseCase(repo repository.ProductRepository, log *logger.Logger) *InventoryUseCase {
	uc := &InventoryUseCase{
		products: make(map[int]*entity.Product),
		usedIDs:  make(map[int]struct{}),
		repo:     repo,
		log:      log,
	}
	uc.Load()
	return uc
}

// Load vacía y repuebla el mapa desde el backend. Un error de almacenamiento
// se registra y deja el inventario vacío: el proceso debe poder arrancar
// incluso contra una BD vacía o inalcanzable.
func (uc *InventoryUseCase) Load() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.products = make(map[int]*entity.Product)
	uc.usedIDs = make(map[int]struct{})

	list, err := uc.repo.GetAll()
	if err != nil {
		uc.log.Warn().Err(err).Msg("cargando productos desde la BD")
		return 0
	}
	for _, p := range list {
		uc.products[p.ID()] = p
		uc.usedIDs[p.ID()] = struct{}{}
	}
	uc.log.Info().Int("productos", len(uc.products)).Msg("inventario cargado desde la BD")
	return len(uc.products)
}

// AddProduct valida, persiste y solo entonces agrega a memoria.
// La verificación del id contra la BD (clave primaria) cubre la carrera con
// otro proceso que comparte la misma base: el chequeo en memoria puede pasar
// y aún así la inserción fallar con duplicado.
func (uc *InventoryUseCase) AddProduct(id int, name string, price decimal.Decimal, quantity int, category entity.Category, description string) (*entity.Product, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %q, debe ser una de %v", domain.ErrInvalidCategory, category, entity.ValidCategories())
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, used := uc.usedIDs[id]; used {
		return nil, fmt.Errorf("%w: ya existe un producto con id %d", domain.ErrDuplicateID, id)
	}
	product, err := entity.NewProduct(id, name, price, quantity, category, description)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Insert(product); err != nil {
		return nil, err
	}
	uc.products[id] = product
	uc.usedIDs[id] = struct{}{}
	return product, nil
}

// RemoveProduct elimina primero de la BD y solo con confirmación quita el
// producto de memoria y libera su id. Devuelve false si el id no está.
func (uc *InventoryUseCase) RemoveProduct(id int) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.products[id]; !ok {
		return false, nil
	}
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}
	delete(uc.products, id)
	delete(uc.usedIDs, id)
	return true, nil
}

// UpdateProduct valida el parche ANTES de tocar la BD: un mutador que fallara
// después del commit dejaría la fila actualizada pero la memoria no. Devuelve
// false si el id no está o el parche viene vacío.
func (uc *InventoryUseCase) UpdateProduct(id int, patch entity.ProductPatch) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	product, ok := uc.products[id]
	if !ok {
		return false, nil
	}
	if err := patch.Validate(); err != nil {
		return false, err
	}
	updated, err := uc.repo.Update(id, patch)
	if err != nil {
		return false, err
	}
	if !updated {
		return false, nil
	}
	if err := patch.Apply(product); err != nil {
		// Parche ya validado: no debería ocurrir.
		return false, err
	}
	return true, nil
}

// Search busca por nombre, subcadena sin distinguir mayúsculas. El orden del
// resultado no es contractual.
func (uc *InventoryUseCase) Search(term string) []*entity.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	term = strings.ToLower(term)
	var results []*entity.Product
	for _, p := range uc.products {
		if strings.Contains(strings.ToLower(p.Name()), term) {
			results = append(results, p)
		}
	}
	return results
}

// ByID devuelve el producto o nil si no está.
func (uc *InventoryUseCase) ByID(id int) *entity.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.products[id]
}

// All devuelve el catálogo completo ordenado por id.
func (uc *InventoryUseCase) All() []*entity.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	list := make([]*entity.Product, 0, len(uc.products))
	for _, p := range uc.products {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID() < list[j].ID() })
	return list
}

// ByCategory filtra por categoría exacta, sin validar contra el conjunto
// cerrado: eso se hace aguas arriba cuando aplica.
func (uc *InventoryUseCase) ByCategory(category entity.Category) []*entity.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	var results []*entity.Product
	for _, p := range uc.products {
		if p.Category() == category {
			results = append(results, p)
		}
	}
	return results
}

// LowStock devuelve los productos con cantidad menor o igual al umbral.
func (uc *InventoryUseCase) LowStock(threshold int) []*entity.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	var results []*entity.Product
	for _, p := range uc.products {
		if p.Quantity() <= threshold {
			results = append(results, p)
		}
	}
	return results
}

// Statistics calcula total de productos, valor total (Σ precio×cantidad) y
// conteo por categoría sobre el estado actual.
func (uc *InventoryUseCase) Statistics() dto.StatsResponse {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	total := decimal.Zero
	byCategory := make(map[string]int)
	for _, p := range uc.products {
		total = total.Add(p.Price().Mul(decimal.NewFromInt(int64(p.Quantity()))))
		byCategory[p.Category().String()]++
	}
	return dto.StatsResponse{
		TotalProducts:   len(uc.products),
		TotalValue:      total,
		CountByCategory: byCategory,
	}
}

// Len devuelve la cantidad de productos en el inventario.
func (uc *InventoryUseCase) Len() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.products)
}
