package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tienda-tech/inventario/internal/application/dto"
	"github.com/tienda-tech/inventario/internal/application/usecase"
	"github.com/tienda-tech/inventario/internal/domain/entity"
)

// StoreHandler expone las rutas históricas del storefront: la ficha de
// producto por nombre y el listado por categoría.
type StoreHandler struct {
	uc *usecase.InventoryUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.InventoryUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// ProductPage busca por nombre aproximado. La normalización guion_bajo ->
// espacio es responsabilidad de esta capa, no del inventario.
func (h *StoreHandler) ProductPage(c *fiber.Ctx) error {
	nombre := strings.ReplaceAll(strings.ToLower(c.Params("nombre")), "_", " ")
	results := h.uc.Search(nombre)
	if len(results) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado: " + nombre})
	}
	// El orden de Search no es contractual: con varias coincidencias gana la
	// de menor id para que la misma URL sirva siempre el mismo producto.
	first := results[0]
	for _, p := range results[1:] {
		if p.ID() < first.ID() {
			first = p
		}
	}
	return c.JSON(dto.ToProductResponse(first))
}

// CategoryPage lista una categoría. Aquí sí se valida contra el conjunto
// cerrado: una categoría desconocida es 404.
func (h *StoreHandler) CategoryPage(c *fiber.Ctx) error {
	tipo := entity.Category(strings.ToLower(c.Params("tipo")))
	if !tipo.IsValid() {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_CATEGORY", Message: "categoría no encontrada: " + tipo.String()})
	}
	return c.JSON(dto.ToProductListResponse(h.uc.ByCategory(tipo)))
}
