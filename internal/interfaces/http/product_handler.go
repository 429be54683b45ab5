package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tienda-tech/inventario/internal/application/dto"
	"github.com/tienda-tech/inventario/internal/application/usecase"
	"github.com/tienda-tech/inventario/internal/domain"
	"github.com/tienda-tech/inventario/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc *usecase.InventoryUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.InventoryUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List devuelve el catálogo completo.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.ToProductListResponse(h.uc.All()))
}

// GetByID devuelve un producto por id o 404.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	p := h.uc.ByID(id)
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(dto.ToProductResponse(p))
}

// Search búsqueda por subcadena del nombre, sin distinguir mayúsculas.
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_QUERY", Message: "q es requerido"})
	}
	return c.JSON(dto.ToProductListResponse(h.uc.Search(term)))
}

// LowStock productos con cantidad menor o igual al umbral (5 por defecto).
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", usecase.DefaultLowStockThreshold)
	if threshold < 0 {
		threshold = usecase.DefaultLowStockThreshold
	}
	return c.JSON(dto.ToProductListResponse(h.uc.LowStock(threshold)))
}

// Stats estadísticas agregadas del inventario.
func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.uc.Statistics())
}

// Create agrega un producto nuevo al inventario.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.AddProduct(in.ID, in.Name, in.Price, in.Quantity, entity.Category(in.Category), in.Description)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductResponse(p))
}

// Update actualización parcial de un producto.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	patch := in.ToPatch()
	if patch.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_PATCH", Message: "ningún campo para actualizar"})
	}
	updated, err := h.uc.UpdateProduct(id, patch)
	if err != nil {
		return writeDomainError(c, err)
	}
	if !updated {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(dto.ToProductResponse(h.uc.ByID(id)))
}

// Delete elimina un producto por id.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	removed, err := h.uc.RemoveProduct(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// writeDomainError traduce errores de dominio a códigos HTTP.
func writeDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicateID):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_ID", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCategory):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CATEGORY", Message: err.Error()})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
