package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

type visitorRepository struct {
	db *sql.DB
}

func NewVisitorRepository(db *sql.DB) repository.VisitorRepository {
	return &visitorRepository{db: db}
}

const visitorColumns = `id, name, phone, email, purpose, created_at`

func scanVisitor(row interface{ Scan(...any) error }) (*domain.Visitor, error) {
	var v domain.Visitor
	var createdAt time.Time
	if err := row.Scan(&v.ID, &v.Name, &v.Phone, &v.Email, &v.Purpose, &createdAt); err != nil {
		return nil, mapError(err)
	}
	v.CreatedOn = createdAt.Format("2006-01-02")
	return &v, nil
}

func (r *visitorRepository) Create(ctx context.Context, visitor *domain.Visitor) error {
	if visitor.ID == uuid.Nil {
		visitor.ID = uuid.New()
	}
	query := `INSERT INTO visitors (id, name, phone, email, purpose)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, visitor.ID, visitor.Name, visitor.Phone,
		visitor.Email, visitor.Purpose)
	return mapError(err)
}

func (r *visitorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Visitor, error) {
	query := `SELECT ` + visitorColumns + ` FROM visitors WHERE id = $1`
	return scanVisitor(r.db.QueryRowContext(ctx, query, id))
}

func (r *visitorRepository) List(ctx context.Context) ([]domain.Visitor, error) {
	query := `SELECT ` + visitorColumns + ` FROM visitors ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var visitors []domain.Visitor
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, err
		}
		visitors = append(visitors, *v)
	}
	return visitors, mapError(rows.Err())
}

func (r *visitorRepository) Update(ctx context.Context, visitor *domain.Visitor) error {
	query := `UPDATE visitors SET name = $2, phone = $3, email = $4, purpose = $5 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, visitor.ID, visitor.Name, visitor.Phone,
		visitor.Email, visitor.Purpose)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (r *visitorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM visitors WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}
