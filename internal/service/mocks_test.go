package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"desqworx-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) CountByRole(ctx context.Context, role domain.Role) (int32, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// MockCompanyRepo
type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) GetByAdminID(ctx context.Context, adminID uuid.UUID) (*domain.Company, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) List(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}
func (m *MockCompanyRepo) SetCredits(ctx context.Context, id uuid.UUID, credits int32) error {
	args := m.Called(ctx, id, credits)
	return args.Error(0)
}
func (m *MockCompanyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
func (m *MockEmployeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Employee, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// MockCreditRepo
type MockCreditRepo struct {
	mock.Mock
}

func (m *MockCreditRepo) RecordTransaction(ctx context.Context, companyID uuid.UUID, amount int32, action domain.CreditAction, description string, createdBy uuid.UUID) (int32, error) {
	args := m.Called(ctx, companyID, amount, action, description, createdBy)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockCreditRepo) GetBalance(ctx context.Context, companyID uuid.UUID) (int32, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockCreditRepo) ListEntries(ctx context.Context, companyID uuid.UUID, page, pageSize int32) ([]domain.CreditEntry, int32, error) {
	args := m.Called(ctx, companyID, page, pageSize)
	return args.Get(0).([]domain.CreditEntry), args.Get(1).(int32), args.Error(2)
}

// MockAttendanceRepo
type MockAttendanceRepo struct {
	mock.Mock
}

func (m *MockAttendanceRepo) GetForDate(ctx context.Context, employeeID uuid.UUID, date string) (*domain.Attendance, error) {
	args := m.Called(ctx, employeeID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}
func (m *MockAttendanceRepo) CreateAbsent(ctx context.Context, att *domain.Attendance) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}
func (m *MockAttendanceRepo) CreatePresent(ctx context.Context, att *domain.Attendance, seatPrice int32, description string, chargedBy uuid.UUID) error {
	args := m.Called(ctx, att, seatPrice, description, chargedBy)
	return args.Error(0)
}
func (m *MockAttendanceRepo) CorrectToPresent(ctx context.Context, attendanceID, companyID uuid.UUID, seatPrice int32, description string, changedBy uuid.UUID) error {
	args := m.Called(ctx, attendanceID, companyID, seatPrice, description, changedBy)
	return args.Error(0)
}
func (m *MockAttendanceRepo) CorrectToAbsent(ctx context.Context, attendanceID, companyID uuid.UUID, seatPrice int32, changedBy uuid.UUID) error {
	args := m.Called(ctx, attendanceID, companyID, seatPrice, changedBy)
	return args.Error(0)
}
func (m *MockAttendanceRepo) ListWithChanges(ctx context.Context, employeeID uuid.UUID, page, pageSize int32) ([]domain.AttendanceWithChanges, int32, error) {
	args := m.Called(ctx, employeeID, page, pageSize)
	return args.Get(0).([]domain.AttendanceWithChanges), args.Get(1).(int32), args.Error(2)
}
func (m *MockAttendanceRepo) ListChanges(ctx context.Context, attendanceID uuid.UUID) ([]domain.AttendanceChange, error) {
	args := m.Called(ctx, attendanceID)
	return args.Get(0).([]domain.AttendanceChange), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SeatBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeatBooking), args.Error(1)
}
func (m *MockBookingRepo) CreateConfirmed(ctx context.Context, booking *domain.SeatBooking, seatPrice int32, description string, chargedBy uuid.UUID) error {
	args := m.Called(ctx, booking, seatPrice, description, chargedBy)
	return args.Error(0)
}
func (m *MockBookingRepo) CancelConfirmed(ctx context.Context, bookingID, companyID uuid.UUID, seatPrice int32, description string, cancelledBy uuid.UUID) error {
	args := m.Called(ctx, bookingID, companyID, seatPrice, description, cancelledBy)
	return args.Error(0)
}
func (m *MockBookingRepo) CountConfirmed(ctx context.Context, companyID uuid.UUID, date string) (int32, error) {
	args := m.Called(ctx, companyID, date)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockBookingRepo) GetUserBookingForDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SeatBooking, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeatBooking), args.Error(1)
}
func (m *MockBookingRepo) ListByCompany(ctx context.Context, companyID uuid.UUID, date string) ([]domain.SeatBooking, error) {
	args := m.Called(ctx, companyID, date)
	return args.Get(0).([]domain.SeatBooking), args.Error(1)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SeatBooking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.SeatBooking), args.Error(1)
}

// MockVisitorRepo
type MockVisitorRepo struct {
	mock.Mock
}

func (m *MockVisitorRepo) Create(ctx context.Context, visitor *domain.Visitor) error {
	args := m.Called(ctx, visitor)
	return args.Error(0)
}
func (m *MockVisitorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Visitor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visitor), args.Error(1)
}
func (m *MockVisitorRepo) List(ctx context.Context) ([]domain.Visitor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Visitor), args.Error(1)
}
func (m *MockVisitorRepo) Update(ctx context.Context, visitor *domain.Visitor) error {
	args := m.Called(ctx, visitor)
	return args.Error(0)
}
func (m *MockVisitorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStatsRepo
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) CountEmployees(ctx context.Context, companyID *uuid.UUID) (int32, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockStatsRepo) CountPresent(ctx context.Context, companyID *uuid.UUID, date string) (int32, error) {
	args := m.Called(ctx, companyID, date)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockStatsRepo) SumBalances(ctx context.Context, companyID *uuid.UUID) (int32, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockStatsRepo) SumEntries(ctx context.Context, companyID *uuid.UUID, action domain.CreditAction) (int32, error) {
	args := m.Called(ctx, companyID, action)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockStatsRepo) CountConfirmedBookings(ctx context.Context, companyID *uuid.UUID, date string) (int32, error) {
	args := m.Called(ctx, companyID, date)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockStatsRepo) SumBookingLimits(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockStatsRepo) CountCompanies(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendLowCreditAlert(ctx context.Context, email, companyName string, balance, seatPrice int32) error {
	args := m.Called(ctx, email, companyName, balance, seatPrice)
	return args.Error(0)
}
func (m *MockEmailService) SendDailyDigest(ctx context.Context, email string, rollup *domain.SystemRollup) error {
	args := m.Called(ctx, email, rollup)
	return args.Error(0)
}
