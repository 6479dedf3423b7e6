package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código de error de PostgreSQL para violación de constraint único.
const codeUniqueViolation = "23505"

// isUniqueViolation indica si el error proviene de un constraint único
// (email de usuario, nombre de categoría, email de proveedor).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
