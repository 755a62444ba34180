package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// scopedValue runs a single-value aggregate, optionally narrowed to one
// company. The company filter is always the last placeholder.
func (r *statsRepository) scopedValue(ctx context.Context, base, filtered string, companyID *uuid.UUID, args ...any) (int32, error) {
	var value int32
	var err error
	if companyID != nil {
		err = r.db.QueryRowContext(ctx, filtered, append(args, *companyID)...).Scan(&value)
	} else {
		err = r.db.QueryRowContext(ctx, base, args...).Scan(&value)
	}
	return value, mapError(err)
}

func (r *statsRepository) CountEmployees(ctx context.Context, companyID *uuid.UUID) (int32, error) {
	return r.scopedValue(ctx,
		`SELECT count(*) FROM employees WHERE status = 'active'`,
		`SELECT count(*) FROM employees WHERE status = 'active' AND company_id = $1`,
		companyID)
}

func (r *statsRepository) CountPresent(ctx context.Context, companyID *uuid.UUID, date string) (int32, error) {
	return r.scopedValue(ctx,
		`SELECT count(*) FROM attendance WHERE date = $1 AND status = 'present'`,
		`SELECT count(*) FROM attendance WHERE date = $1 AND status = 'present' AND company_id = $2`,
		companyID, date)
}

func (r *statsRepository) SumBalances(ctx context.Context, companyID *uuid.UUID) (int32, error) {
	return r.scopedValue(ctx,
		`SELECT COALESCE(SUM(credits), 0) FROM companies`,
		`SELECT COALESCE(SUM(credits), 0) FROM companies WHERE id = $1`,
		companyID)
}

func (r *statsRepository) SumEntries(ctx context.Context, companyID *uuid.UUID, action domain.CreditAction) (int32, error) {
	return r.scopedValue(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM credit_history WHERE action = $1`,
		`SELECT COALESCE(SUM(amount), 0) FROM credit_history WHERE action = $1 AND company_id = $2`,
		companyID, action)
}

func (r *statsRepository) CountConfirmedBookings(ctx context.Context, companyID *uuid.UUID, date string) (int32, error) {
	return r.scopedValue(ctx,
		`SELECT count(*) FROM seat_bookings WHERE date = $1 AND status = 'confirmed'`,
		`SELECT count(*) FROM seat_bookings WHERE date = $1 AND status = 'confirmed' AND company_id = $2`,
		companyID, date)
}

func (r *statsRepository) SumBookingLimits(ctx context.Context) (int32, error) {
	var value int32
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(seat_booking_limit), 0) FROM companies`).Scan(&value)
	return value, mapError(err)
}

func (r *statsRepository) CountCompanies(ctx context.Context) (int32, error) {
	var value int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM companies`).Scan(&value)
	return value, mapError(err)
}
