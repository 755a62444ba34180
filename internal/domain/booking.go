package domain

import "github.com/google/uuid"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// SeatBooking reserves one seat for one user on one date, charged at the
// company's seat price. Cancellation flips the status and refunds the charge;
// the row itself is kept.
type SeatBooking struct {
	ID        uuid.UUID     `json:"id"`
	CompanyID uuid.UUID     `json:"company_id"`
	UserID    uuid.UUID     `json:"user_id"`
	Date      string        `json:"date"` // YYYY-MM-DD
	Status    BookingStatus `json:"status"`
	CreatedOn string        `json:"created_on"`
}
