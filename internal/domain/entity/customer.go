package entity

import "time"

// Customer representa un cliente registrado de la tienda. Tabla secundaria:
// no participa del contrato de sincronización del inventario.
type Customer struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	RegisteredAt time.Time
}
