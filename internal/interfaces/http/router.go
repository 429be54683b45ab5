package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tienda-tech/inventario/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *usecase.InventoryUseCase
	CustomerUC  *usecase.CustomerUseCase
}

// Router registra las rutas de la tienda: la API JSON de productos y las dos
// rutas históricas del storefront (/producto/:nombre y /categoria/:tipo).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.InventoryUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/stats", productHandler.Stats)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/", customerHandler.Register)

	// Rutas del storefront
	storeHandler := NewStoreHandler(deps.InventoryUC)
	app.Get("/producto/:nombre", storeHandler.ProductPage)
	app.Get("/categoria/:tipo", storeHandler.CategoryPage)
}
