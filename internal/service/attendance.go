package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	companyRepo    repository.CompanyRepository
	employeeRepo   repository.EmployeeRepository
	creditRepo     repository.CreditRepository
	userRepo       repository.UserRepository
	emailSvc       EmailService
}

func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	companyRepo repository.CompanyRepository,
	employeeRepo repository.EmployeeRepository,
	creditRepo repository.CreditRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		companyRepo:    companyRepo,
		employeeRepo:   employeeRepo,
		creditRepo:     creditRepo,
		userRepo:       userRepo,
		emailSvc:       emailSvc,
	}
}

// Mark drives the per-day state machine for one employee:
//
//	unmarked -> present   charge seat price, ledger entry
//	unmarked -> absent    free
//	absent   -> present   re-charge, ledger entry, attendance-history entry
//	present  -> absent    refund, NO ledger entry, attendance-history entry
//
// Re-marking the same status is a no-op success. Each branch commits its
// record and credit mutations in one transaction, so a failure partway
// (insufficient credits included) leaves the store untouched.
//
// The correction asymmetry -- a refund skips the ledger while a re-charge
// writes to it -- is deliberate: refunds of a mistaken mark are not treated
// as chargeable events, which keeps "used" totals from being double-counted.
func (s *attendanceService) Mark(ctx context.Context, actor domain.Actor, employeeID, companyID uuid.UUID, status domain.AttendanceStatus, date string) (*domain.Attendance, error) {
	if status != domain.AttendanceStatusPresent && status != domain.AttendanceStatusAbsent {
		return nil, fmt.Errorf("%w: invalid attendance status %q", domain.ErrConstraintViolation, status)
	}
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := requireCompanyAdmin(actor, company); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.CompanyID != companyID {
		return nil, fmt.Errorf("%w: employee %s does not belong to company %s", domain.ErrNotFound, employeeID, companyID)
	}

	description := fmt.Sprintf("Attendance marked for %s", date)

	existing, err := s.attendanceRepo.GetForDate(ctx, employeeID, date)
	var record *domain.Attendance
	switch {
	case err == nil:
		if existing.Status == status {
			return existing, nil // re-marking the same status is a no-op
		}
		if status == domain.AttendanceStatusPresent {
			if company.Credits < company.SeatPrice {
				return nil, fmt.Errorf("%w: company does not have enough credits", domain.ErrInsufficientCredits)
			}
			if err := s.attendanceRepo.CorrectToPresent(ctx, existing.ID, companyID, company.SeatPrice, description, actor.UserID); err != nil {
				return nil, err
			}
		} else {
			if err := s.attendanceRepo.CorrectToAbsent(ctx, existing.ID, companyID, company.SeatPrice, actor.UserID); err != nil {
				return nil, err
			}
		}
		existing.Status = status
		record = existing

	case errors.Is(err, domain.ErrNotFound):
		att := &domain.Attendance{
			UserID:    employeeID,
			CompanyID: companyID,
			Date:      date,
			Status:    status,
		}
		if status == domain.AttendanceStatusPresent {
			if company.Credits < company.SeatPrice {
				return nil, fmt.Errorf("%w: company does not have enough credits", domain.ErrInsufficientCredits)
			}
			if err := s.attendanceRepo.CreatePresent(ctx, att, company.SeatPrice, description, actor.UserID); err != nil {
				return nil, err
			}
		} else {
			if err := s.attendanceRepo.CreateAbsent(ctx, att); err != nil {
				return nil, err
			}
		}
		record = att

	default:
		return nil, err
	}

	if status == domain.AttendanceStatusPresent {
		s.alertIfLow(ctx, company)
	}
	return record, nil
}

func (s *attendanceService) GetHistory(ctx context.Context, employeeID uuid.UUID, page, pageSize int32) ([]domain.AttendanceWithChanges, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.attendanceRepo.ListWithChanges(ctx, employeeID, page, pageSize)
}

func (s *attendanceService) GetChanges(ctx context.Context, attendanceID uuid.UUID) ([]domain.AttendanceChange, error) {
	return s.attendanceRepo.ListChanges(ctx, attendanceID)
}

func (s *attendanceService) alertIfLow(ctx context.Context, company *domain.Company) {
	balance, err := s.creditRepo.GetBalance(ctx, company.ID)
	if err != nil || balance >= company.SeatPrice {
		return
	}
	admin, err := s.userRepo.GetByID(ctx, company.AdminID)
	if err != nil {
		return
	}
	_ = s.emailSvc.SendLowCreditAlert(ctx, admin.Email, company.Name, balance, company.SeatPrice)
}
