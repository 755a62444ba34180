package repository

import (
	"context"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	CountByRole(ctx context.Context, role domain.Role) (int32, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetByAdminID(ctx context.Context, adminID uuid.UUID) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error

	// SetCredits overwrites the balance without touching the ledger. It is
	// the administrative override path; audited changes go through
	// CreditRepository.RecordTransaction.
	SetCredits(ctx context.Context, id uuid.UUID, credits int32) error

	// Delete removes the company and every dependent row in one
	// transaction, in explicit referential order.
	Delete(ctx context.Context, id uuid.UUID) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
}

type CreditRepository interface {
	// RecordTransaction applies a balance change and its history row as one
	// atomic unit via the record_credit_transaction procedure, returning the
	// new balance.
	RecordTransaction(ctx context.Context, companyID uuid.UUID, amount int32, action domain.CreditAction, description string, createdBy uuid.UUID) (int32, error)
	GetBalance(ctx context.Context, companyID uuid.UUID) (int32, error)
	ListEntries(ctx context.Context, companyID uuid.UUID, page, pageSize int32) ([]domain.CreditEntry, int32, error)
}

type AttendanceRepository interface {
	GetForDate(ctx context.Context, employeeID uuid.UUID, date string) (*domain.Attendance, error)

	// CreateAbsent inserts a new record with no credit effect.
	CreateAbsent(ctx context.Context, att *domain.Attendance) error

	// CreatePresent inserts a new record and charges seatPrice with a ledger
	// entry, all inside one transaction.
	CreatePresent(ctx context.Context, att *domain.Attendance, seatPrice int32, description string, chargedBy uuid.UUID) error

	// CorrectToPresent flips an existing record to present, appends the
	// attendance-history row and re-charges seatPrice with a ledger entry.
	CorrectToPresent(ctx context.Context, attendanceID, companyID uuid.UUID, seatPrice int32, description string, changedBy uuid.UUID) error

	// CorrectToAbsent flips an existing record to absent, appends the
	// attendance-history row and refunds seatPrice directly on the company
	// balance. The refund does not produce a ledger entry.
	CorrectToAbsent(ctx context.Context, attendanceID, companyID uuid.UUID, seatPrice int32, changedBy uuid.UUID) error

	ListWithChanges(ctx context.Context, employeeID uuid.UUID, page, pageSize int32) ([]domain.AttendanceWithChanges, int32, error)
	ListChanges(ctx context.Context, attendanceID uuid.UUID) ([]domain.AttendanceChange, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SeatBooking, error)

	// CreateConfirmed inserts the booking and charges seatPrice with a
	// ledger entry in one transaction.
	CreateConfirmed(ctx context.Context, booking *domain.SeatBooking, seatPrice int32, description string, chargedBy uuid.UUID) error

	// CancelConfirmed flips the booking to cancelled and refunds seatPrice
	// with an "assigned" ledger entry in one transaction.
	CancelConfirmed(ctx context.Context, bookingID, companyID uuid.UUID, seatPrice int32, description string, cancelledBy uuid.UUID) error

	CountConfirmed(ctx context.Context, companyID uuid.UUID, date string) (int32, error)
	GetUserBookingForDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SeatBooking, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, date string) ([]domain.SeatBooking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SeatBooking, error)
}

// VisitorRepository stores front-desk visitor log entries. List returns
// newest first.
type VisitorRepository interface {
	Create(ctx context.Context, visitor *domain.Visitor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Visitor, error)
	List(ctx context.Context) ([]domain.Visitor, error)
	Update(ctx context.Context, visitor *domain.Visitor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatsRepository serves the dashboard rollups. A nil companyID scopes a
// query to the whole system. Read-only.
type StatsRepository interface {
	CountEmployees(ctx context.Context, companyID *uuid.UUID) (int32, error)
	CountPresent(ctx context.Context, companyID *uuid.UUID, date string) (int32, error)
	SumBalances(ctx context.Context, companyID *uuid.UUID) (int32, error)
	SumEntries(ctx context.Context, companyID *uuid.UUID, action domain.CreditAction) (int32, error)
	CountConfirmedBookings(ctx context.Context, companyID *uuid.UUID, date string) (int32, error)
	SumBookingLimits(ctx context.Context) (int32, error)
	CountCompanies(ctx context.Context) (int32, error)
}
