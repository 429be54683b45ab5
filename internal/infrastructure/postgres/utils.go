package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código de error de PostgreSQL para violación de constraint único.
const pgUniqueViolation = "23505"

// isUniqueViolation indica si el error proviene de una clave primaria o un
// índice único (producto duplicado, email repetido).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
