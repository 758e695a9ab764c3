// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// PGCode extracts the SQLSTATE from pgx or lib/pq errors ("" otherwise).
func PGCode(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func IsUniqueViolation(err error) bool { return PGCode(err) == pgUniqueViolation }

// MapPGError: unique -> 409, FK/check -> 400, not found -> 404, rest -> 500.
func MapPGError(err error) (int, string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, "record not found"
	}
	switch PGCode(err) {
	case pgUniqueViolation:
		return http.StatusConflict, "duplicate data (unique violation)"
	case pgForeignKeyViolation:
		return http.StatusBadRequest, "referenced row not found (FK violation)"
	case pgCheckViolation:
		return http.StatusBadRequest, "value out of range (check violation)"
	}
	return http.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}

// FromError unwraps *fiber.Error returned from inside a transaction,
// falling back to PG mapping.
func FromError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return WritePGError(c, err)
}
