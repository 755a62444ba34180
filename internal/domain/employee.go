package domain

import "github.com/google/uuid"

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// Employee is an attendance subject belonging to a company. Employees are
// soft-disabled via the status flag; rows referenced by attendance or credit
// history are never deleted outside a full company teardown.
type Employee struct {
	ID        uuid.UUID      `json:"id"`
	CompanyID uuid.UUID      `json:"company_id"`
	FullName  string         `json:"full_name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Status    EmployeeStatus `json:"status"`
	CreatedOn string         `json:"created_on"`
}
