package dto

// Etiquetas de stock derivadas de la cantidad, para las vistas de la tienda.
const (
	LabelInStock      = "In stock"
	LabelLimitedStock = "Limited stock"
	LabelOutOfStock   = "Out of stock"
)

// StockLabel clasifica una cantidad: > 5 disponible, 1..5 limitado, 0 agotado.
func StockLabel(quantity int) string {
	switch {
	case quantity > 5:
		return LabelInStock
	case quantity > 0:
		return LabelLimitedStock
	default:
		return LabelOutOfStock
	}
}
