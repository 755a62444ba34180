package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

const companyColumns = `id, name, admin_id, credits, seat_price, seat_booking_limit, status, created_at`

func scanCompany(row interface{ Scan(...any) error }) (*domain.Company, error) {
	var c domain.Company
	var createdAt time.Time
	if err := row.Scan(&c.ID, &c.Name, &c.AdminID, &c.Credits, &c.SeatPrice, &c.SeatBookingLimit, &c.Status, &createdAt); err != nil {
		return nil, mapError(err)
	}
	c.CreatedOn = createdAt.Format("2006-01-02")
	return &c, nil
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	query := `INSERT INTO companies (id, name, admin_id, credits, seat_price, seat_booking_limit, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, company.ID, company.Name, company.AdminID,
		company.Credits, company.SeatPrice, company.SeatBookingLimit, company.Status)
	return mapError(err)
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return scanCompany(r.db.QueryRowContext(ctx, query, id))
}

func (r *companyRepository) GetByAdminID(ctx context.Context, adminID uuid.UUID) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE admin_id = $1`
	return scanCompany(r.db.QueryRowContext(ctx, query, adminID))
}

func (r *companyRepository) List(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	return companies, mapError(rows.Err())
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET name = $2, admin_id = $3, seat_price = $4, seat_booking_limit = $5, status = $6
	          WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, company.ID, company.Name, company.AdminID,
		company.SeatPrice, company.SeatBookingLimit, company.Status)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (r *companyRepository) SetCredits(ctx context.Context, id uuid.UUID, credits int32) error {
	result, err := r.db.ExecContext(ctx, `UPDATE companies SET credits = $2 WHERE id = $1`, id, credits)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

// Delete performs the full tenant teardown. The deletes are issued in
// explicit referential order rather than relying on ON DELETE CASCADE so the
// ordering stays auditable.
func (r *companyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback()

	teardown := []string{
		`DELETE FROM attendance_history WHERE attendance_id IN (SELECT id FROM attendance WHERE company_id = $1)`,
		`DELETE FROM attendance WHERE company_id = $1`,
		`DELETE FROM credit_history WHERE company_id = $1`,
		`DELETE FROM seat_bookings WHERE company_id = $1`,
		`DELETE FROM employees WHERE company_id = $1`,
		`DELETE FROM users WHERE company_id = $1`,
	}
	for _, stmt := range teardown {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return mapError(err)
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if err := requireRow(result); err != nil {
		return err
	}
	return mapError(tx.Commit())
}

// requireRow converts a zero-row UPDATE/DELETE into ErrNotFound.
func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
