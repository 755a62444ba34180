package domain

import "github.com/google/uuid"

type CompanyStatus string

const (
	CompanyStatusActive   CompanyStatus = "active"
	CompanyStatusInactive CompanyStatus = "inactive"
)

// Company is a tenant of the coworking space. Credits is the prepaid seat
// balance and must never go negative after a committed operation; the balance
// is only mutated through the credit ledger procedure or an explicit admin
// override.
type Company struct {
	ID               uuid.UUID     `json:"id"`
	Name             string        `json:"name"`
	AdminID          uuid.UUID     `json:"admin_id"`
	Credits          int32         `json:"credits"`
	SeatPrice        int32         `json:"seat_price"`
	SeatBookingLimit int32         `json:"seat_booking_limit"`
	Status           CompanyStatus `json:"status"`
	CreatedOn        string        `json:"created_on"`
}
