package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/erp/crm/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgIntegrityClass is the SQLSTATE class of integrity constraint violations
const pgIntegrityClass = "23"

// translateError maps driver and ORM errors to domain errors.
// Integrity errors keep the original error in the chain for logging while
// the domain error carries the message shown to clients.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", shared.ErrDuplicateEntry, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return fmt.Errorf("%w: %w", shared.ErrDataIntegrity, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, pgIntegrityClass) {
		if pgErr.Code == "23505" {
			return fmt.Errorf("%w: %w", shared.ErrDuplicateEntry, err)
		}
		return fmt.Errorf("%w: %w", shared.ErrDataIntegrity, err)
	}
	return err
}

// escapeLike escapes LIKE wildcards so that user input matches literally
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// containsPattern builds a case-insensitive substring pattern for LIKE ... ESCAPE '\'
func containsPattern(s string) string {
	return "%" + escapeLike(strings.ToLower(s)) + "%"
}
