package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, company_id, full_name, email, phone, status, created_at`

func scanEmployee(row interface{ Scan(...any) error }) (*domain.Employee, error) {
	var e domain.Employee
	var createdAt time.Time
	if err := row.Scan(&e.ID, &e.CompanyID, &e.FullName, &e.Email, &e.Phone, &e.Status, &createdAt); err != nil {
		return nil, mapError(err)
	}
	e.CreatedOn = createdAt.Format("2006-01-02")
	return &e, nil
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	query := `INSERT INTO employees (id, company_id, full_name, email, phone, status)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, employee.ID, employee.CompanyID, employee.FullName,
		employee.Email, employee.Phone, employee.Status)
	return mapError(err)
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(r.db.QueryRowContext(ctx, query, id))
}

func (r *employeeRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 ORDER BY full_name`
	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, mapError(rows.Err())
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	query := `UPDATE employees SET full_name = $2, email = $3, phone = $4, status = $5 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, employee.ID, employee.FullName, employee.Email,
		employee.Phone, employee.Status)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}
