package domain

import "github.com/google/uuid"

// Visitor is a walk-in guest logged at the front desk. Visitors are not
// accounts and have no credit effect.
type Visitor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Purpose   string    `json:"purpose"`
	CreatedOn string    `json:"created_on"`
}
