package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La capa de presentación los traduce a HTTP 400/404/409 o a un reintento en consola.
var (
	ErrValidation      = errors.New("entrada inválida")
	ErrDuplicateID     = errors.New("id de producto duplicado")
	ErrInvalidCategory = errors.New("categoría no válida")
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrDuplicateEmail  = errors.New("el email ya está registrado")
)
