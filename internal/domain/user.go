package domain

import "github.com/google/uuid"

// User is a login account: the super admin or a company admin. Attendance
// subjects live in the employees table, not here.
type User struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	CompanyID    uuid.UUID `json:"company_id"`
	Role         Role      `json:"role"`
	CreatedOn    string    `json:"created_on"`
}
