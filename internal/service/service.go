package service

import (
	"context"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error) // user, access token
	EnsureSuperAdmin(ctx context.Context) error
	GetProfile(ctx context.Context, actor domain.Actor) (*domain.User, error)
	UpdateProfile(ctx context.Context, actor domain.Actor, fullName, email, phone string) (*domain.User, error)
	ChangePassword(ctx context.Context, actor domain.Actor, current, next string) error
}

type CompanyService interface {
	CreateCompany(ctx context.Context, actor domain.Actor, company *domain.Company) error
	GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetCompanyByAdmin(ctx context.Context, adminID uuid.UUID) (*domain.Company, error)
	ListCompanies(ctx context.Context, actor domain.Actor) ([]domain.Company, error)
	UpdateCompany(ctx context.Context, actor domain.Actor, company *domain.Company) error
	DeleteCompany(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type EmployeeService interface {
	CreateEmployee(ctx context.Context, actor domain.Actor, employee *domain.Employee) error
	GetEmployee(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	ListEmployees(ctx context.Context, actor domain.Actor, companyID uuid.UUID) ([]domain.Employee, error)
	SetEmployeeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, status domain.EmployeeStatus) error
}

type CreditService interface {
	AddCredits(ctx context.Context, actor domain.Actor, companyID uuid.UUID, amount int32, description string) (int32, error)
	Deduct(ctx context.Context, actor domain.Actor, companyID uuid.UUID, amount int32, description string) (int32, error)
	SetCredits(ctx context.Context, actor domain.Actor, companyID uuid.UUID, value int32) error
	GetBalance(ctx context.Context, companyID uuid.UUID) (int32, error)
	GetHistory(ctx context.Context, companyID uuid.UUID, page, pageSize int32) ([]domain.CreditEntry, int32, error)
}

type AttendanceService interface {
	Mark(ctx context.Context, actor domain.Actor, employeeID, companyID uuid.UUID, status domain.AttendanceStatus, date string) (*domain.Attendance, error)
	GetHistory(ctx context.Context, employeeID uuid.UUID, page, pageSize int32) ([]domain.AttendanceWithChanges, int32, error)
	GetChanges(ctx context.Context, attendanceID uuid.UUID) ([]domain.AttendanceChange, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, actor domain.Actor, companyID, userID uuid.UUID, date string) (*domain.SeatBooking, error)
	CancelBooking(ctx context.Context, actor domain.Actor, bookingID uuid.UUID) error
	ListBookingsByCompany(ctx context.Context, companyID uuid.UUID, date string) ([]domain.SeatBooking, error)
	ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]domain.SeatBooking, error)
}

type DashboardService interface {
	CompanyRollup(ctx context.Context, companyID uuid.UUID, date string) (*domain.CompanyRollup, error)
	SystemRollup(ctx context.Context, date string) (*domain.SystemRollup, error)
}

type VisitorService interface {
	LogVisitor(ctx context.Context, actor domain.Actor, visitor *domain.Visitor) error
	GetVisitor(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Visitor, error)
	ListVisitors(ctx context.Context, actor domain.Actor) ([]domain.Visitor, error)
	UpdateVisitor(ctx context.Context, actor domain.Actor, visitor *domain.Visitor) error
	DeleteVisitor(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

type EmailService interface {
	SendLowCreditAlert(ctx context.Context, email, companyName string, balance, seatPrice int32) error
	SendDailyDigest(ctx context.Context, email string, rollup *domain.SystemRollup) error
}
