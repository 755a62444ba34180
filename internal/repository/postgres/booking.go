package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, company_id, user_id, date, status, created_at`

func scanBooking(row interface{ Scan(...any) error }) (*domain.SeatBooking, error) {
	var b domain.SeatBooking
	var date, createdAt time.Time
	if err := row.Scan(&b.ID, &b.CompanyID, &b.UserID, &date, &b.Status, &createdAt); err != nil {
		return nil, mapError(err)
	}
	b.Date = date.Format("2006-01-02")
	b.CreatedOn = createdAt.Format(time.RFC3339)
	return &b, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SeatBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM seat_bookings WHERE id = $1`
	return scanBooking(r.db.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) CreateConfirmed(ctx context.Context, booking *domain.SeatBooking, seatPrice int32, description string, chargedBy uuid.UUID) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback()

	query := `INSERT INTO seat_bookings (id, company_id, user_id, date, status) VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.ExecContext(ctx, query, booking.ID, booking.CompanyID, booking.UserID, booking.Date, booking.Status); err != nil {
		return mapError(err)
	}
	if _, err := tx.ExecContext(ctx, `SELECT record_credit_transaction($1, $2, 'used', $3, $4)`,
		booking.CompanyID, seatPrice, description, chargedBy); err != nil {
		return mapError(err)
	}
	return mapError(tx.Commit())
}

// CancelConfirmed refunds through the ledger procedure. Unlike an attendance
// correction, a cancelled booking does produce an "assigned" history row.
func (r *bookingRepository) CancelConfirmed(ctx context.Context, bookingID, companyID uuid.UUID, seatPrice int32, description string, cancelledBy uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE seat_bookings SET status = 'cancelled' WHERE id = $1 AND status = 'confirmed'`, bookingID)
	if err != nil {
		return mapError(err)
	}
	if err := requireRow(result); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `SELECT record_credit_transaction($1, $2, 'assigned', $3, $4)`,
		companyID, seatPrice, description, cancelledBy); err != nil {
		return mapError(err)
	}
	return mapError(tx.Commit())
}

func (r *bookingRepository) CountConfirmed(ctx context.Context, companyID uuid.UUID, date string) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM seat_bookings WHERE company_id = $1 AND date = $2 AND status = 'confirmed'`
	err := r.db.QueryRowContext(ctx, query, companyID, date).Scan(&count)
	return count, mapError(err)
}

func (r *bookingRepository) GetUserBookingForDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SeatBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM seat_bookings
	          WHERE user_id = $1 AND date = $2 AND status = 'confirmed'`
	return scanBooking(r.db.QueryRowContext(ctx, query, userID, date))
}

func (r *bookingRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, date string) ([]domain.SeatBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM seat_bookings WHERE company_id = $1`
	args := []any{companyID}
	if date != "" {
		query += ` AND date = $2`
		args = append(args, date)
	}
	query += ` ORDER BY date DESC`
	return r.list(ctx, query, args...)
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SeatBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM seat_bookings WHERE user_id = $1 ORDER BY date DESC`
	return r.list(ctx, query, userID)
}

func (r *bookingRepository) list(ctx context.Context, query string, args ...any) ([]domain.SeatBooking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var bookings []domain.SeatBooking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, mapError(rows.Err())
}
