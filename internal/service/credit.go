package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

type creditService struct {
	creditRepo  repository.CreditRepository
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewCreditService(
	creditRepo repository.CreditRepository,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) CreditService {
	return &creditService{
		creditRepo:  creditRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

func (s *creditService) AddCredits(ctx context.Context, actor domain.Actor, companyID uuid.UUID, amount int32, description string) (int32, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive, got %d", domain.ErrInvalidAmount, amount)
	}
	if description == "" {
		description = "Credits assigned by admin"
	}
	return s.creditRepo.RecordTransaction(ctx, companyID, amount, domain.CreditActionAssigned, description, actor.UserID)
}

func (s *creditService) Deduct(ctx context.Context, actor domain.Actor, companyID uuid.UUID, amount int32, description string) (int32, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive, got %d", domain.ErrInvalidAmount, amount)
	}

	// The procedure re-checks the balance under a row lock; this pre-read
	// only short-circuits the obvious case without starting a transaction.
	balance, err := s.creditRepo.GetBalance(ctx, companyID)
	if err != nil {
		return 0, err
	}
	if balance < amount {
		return 0, fmt.Errorf("%w: balance %d, requested %d", domain.ErrInsufficientCredits, balance, amount)
	}

	newBalance, err := s.creditRepo.RecordTransaction(ctx, companyID, amount, domain.CreditActionUsed, description, actor.UserID)
	if err != nil {
		return 0, err
	}
	s.alertIfLow(ctx, companyID, newBalance)
	return newBalance, nil
}

// SetCredits is the administrative override: it writes the balance directly
// and records nothing in the ledger. Callers that need an audit trail must
// use AddCredits or Deduct.
func (s *creditService) SetCredits(ctx context.Context, actor domain.Actor, companyID uuid.UUID, value int32) error {
	if err := requireSuperAdmin(actor); err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("%w: balance cannot be negative, got %d", domain.ErrInvalidAmount, value)
	}
	return s.companyRepo.SetCredits(ctx, companyID, value)
}

func (s *creditService) GetBalance(ctx context.Context, companyID uuid.UUID) (int32, error) {
	return s.creditRepo.GetBalance(ctx, companyID)
}

func (s *creditService) GetHistory(ctx context.Context, companyID uuid.UUID, page, pageSize int32) ([]domain.CreditEntry, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.creditRepo.ListEntries(ctx, companyID, page, pageSize)
}

// alertIfLow emails the company admin when the balance drops below the seat
// price. Best effort; a failed email never fails the deduction.
func (s *creditService) alertIfLow(ctx context.Context, companyID uuid.UUID, balance int32) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil || balance >= company.SeatPrice {
		return
	}
	admin, err := s.userRepo.GetByID(ctx, company.AdminID)
	if err != nil {
		return
	}
	_ = s.emailSvc.SendLowCreditAlert(ctx, admin.Email, company.Name, balance, company.SeatPrice)
}
