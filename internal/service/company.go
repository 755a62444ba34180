package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) CreateCompany(ctx context.Context, actor domain.Actor, company *domain.Company) error {
	if err := requireSuperAdmin(actor); err != nil {
		return err
	}
	if company.Name == "" {
		return fmt.Errorf("%w: company name is required", domain.ErrConstraintViolation)
	}
	// New tenants always start with an empty balance; credits arrive through
	// the ledger.
	company.Credits = 0
	if company.Status == "" {
		company.Status = domain.CompanyStatusActive
	}
	return s.companyRepo.Create(ctx, company)
}

func (s *companyService) GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

func (s *companyService) GetCompanyByAdmin(ctx context.Context, adminID uuid.UUID) (*domain.Company, error) {
	return s.companyRepo.GetByAdminID(ctx, adminID)
}

func (s *companyService) ListCompanies(ctx context.Context, actor domain.Actor) ([]domain.Company, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	return s.companyRepo.List(ctx)
}

func (s *companyService) UpdateCompany(ctx context.Context, actor domain.Actor, company *domain.Company) error {
	if err := requireSuperAdmin(actor); err != nil {
		return err
	}
	return s.companyRepo.Update(ctx, company)
}

// DeleteCompany tears down the whole tenant. The repository deletes the
// dependent attendance, history, booking, employee and user rows in explicit
// order before the company row itself.
func (s *companyService) DeleteCompany(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireSuperAdmin(actor); err != nil {
		return err
	}
	return s.companyRepo.Delete(ctx, id)
}
