package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

type creditRepository struct {
	db *sql.DB
}

func NewCreditRepository(db *sql.DB) repository.CreditRepository {
	return &creditRepository{db: db}
}

// RecordTransaction delegates the read-modify-write to the
// record_credit_transaction procedure so the balance update and the history
// insert commit as one unit, with the company row locked for the duration.
func (r *creditRepository) RecordTransaction(ctx context.Context, companyID uuid.UUID, amount int32, action domain.CreditAction, description string, createdBy uuid.UUID) (int32, error) {
	var newBalance int32
	query := `SELECT record_credit_transaction($1, $2, $3, $4, $5)`
	err := r.db.QueryRowContext(ctx, query, companyID, amount, action, description, createdBy).Scan(&newBalance)
	if err != nil {
		return 0, mapError(err)
	}
	return newBalance, nil
}

func (r *creditRepository) GetBalance(ctx context.Context, companyID uuid.UUID) (int32, error) {
	var balance int32
	query := `SELECT credits FROM companies WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, companyID).Scan(&balance)
	return balance, mapError(err)
}

func (r *creditRepository) ListEntries(ctx context.Context, companyID uuid.UUID, page, pageSize int32) ([]domain.CreditEntry, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, company_id, amount, action, COALESCE(description, ''), previous_balance, new_balance, created_by, created_at
	          FROM credit_history WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, companyID, pageSize, offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var entries []domain.CreditEntry
	for rows.Next() {
		var e domain.CreditEntry
		var createdAt time.Time
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.Amount, &e.Action, &e.Description,
			&e.PreviousBalance, &e.NewBalance, &e.CreatedBy, &createdAt); err != nil {
			return nil, 0, mapError(err)
		}
		e.CreatedOn = createdAt.Format(time.RFC3339)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}

	var count int32
	countQuery := `SELECT count(*) FROM credit_history WHERE company_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, companyID).Scan(&count); err != nil {
		return nil, 0, mapError(err)
	}
	return entries, count, nil
}
