package service

import (
	"context"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	companyRepo  repository.CompanyRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository, companyRepo repository.CompanyRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo, companyRepo: companyRepo}
}

func (s *employeeService) CreateEmployee(ctx context.Context, actor domain.Actor, employee *domain.Employee) error {
	company, err := s.companyRepo.GetByID(ctx, employee.CompanyID)
	if err != nil {
		return err
	}
	if err := requireCompanyAdmin(actor, company); err != nil {
		return err
	}
	if employee.Status == "" {
		employee.Status = domain.EmployeeStatusActive
	}
	return s.employeeRepo.Create(ctx, employee)
}

func (s *employeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *employeeService) ListEmployees(ctx context.Context, actor domain.Actor, companyID uuid.UUID) ([]domain.Employee, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := requireCompanyAdmin(actor, company); err != nil {
		return nil, err
	}
	return s.employeeRepo.ListByCompany(ctx, companyID)
}

// SetEmployeeStatus soft-disables or re-enables an employee. Employees are
// never deleted while attendance or credit history references them; a full
// company teardown is the only removal path.
func (s *employeeService) SetEmployeeStatus(ctx context.Context, actor domain.Actor, id uuid.UUID, status domain.EmployeeStatus) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	company, err := s.companyRepo.GetByID(ctx, employee.CompanyID)
	if err != nil {
		return err
	}
	if err := requireCompanyAdmin(actor, company); err != nil {
		return err
	}
	employee.Status = status
	return s.employeeRepo.Update(ctx, employee)
}
