package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tienda-tech/inventario/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. El id lo asigna el
// cliente (llave natural del catálogo), no la base de datos.
type CreateProductRequest struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// UpdateProductRequest entrada para actualización parcial: solo los campos
// presentes se aplican.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
}

// ToPatch traduce la petición al parche explícito del dominio.
func (in UpdateProductRequest) ToPatch() entity.ProductPatch {
	patch := entity.ProductPatch{
		Name:        in.Name,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: in.Description,
	}
	if in.Category != nil {
		cat := entity.Category(*in.Category)
		patch.Category = &cat
	}
	return patch
}

// ProductResponse salida de un producto, con la etiqueta de stock derivada.
type ProductResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	StockLabel  string          `json:"stock_label"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// StatsResponse estadísticas agregadas del inventario.
type StatsResponse struct {
	TotalProducts   int             `json:"total_products"`
	TotalValue      decimal.Decimal `json:"total_value"`
	CountByCategory map[string]int  `json:"count_by_category"`
}

// ToProductResponse arma la respuesta a partir de la entidad.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Price:       p.Price(),
		Quantity:    p.Quantity(),
		Category:    p.Category().String(),
		Description: p.Description(),
		StockLabel:  StockLabel(p.Quantity()),
	}
}

// ToProductListResponse arma el listado.
func ToProductListResponse(list []*entity.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, ToProductResponse(p))
	}
	return ProductListResponse{Items: items, Total: len(items)}
}
