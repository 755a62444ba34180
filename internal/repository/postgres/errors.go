package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"desqworx-backend/internal/domain"
)

// Error codes raised by the stored procedures in scripts/schema.sql.
const (
	codeNoDataFound         = "P0002"
	codeInsufficientCredits = "CR001"
)

// mapError translates driver-level failures into the domain taxonomy while
// keeping the original error text in the chain.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == codeNoDataFound:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, pqErr.Message)
		case pqErr.Code == codeInsufficientCredits:
			return fmt.Errorf("%w: %s", domain.ErrInsufficientCredits, pqErr.Message)
		case pqErr.Code.Class() == "23": // integrity constraint violation
			return fmt.Errorf("%w: %s", domain.ErrConstraintViolation, pqErr.Message)
		case pqErr.Code.Class() == "08", pqErr.Code.Class() == "57": // connection / operator intervention
			return fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, pqErr.Message)
		}
		return err
	}

	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
