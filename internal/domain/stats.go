package domain

import "github.com/google/uuid"

type AttendanceStats struct {
	Present int32 `json:"present"`
	Absent  int32 `json:"absent"`
	Total   int32 `json:"total"`
}

type CreditStats struct {
	Total     int32 `json:"total"`
	Used      int32 `json:"used"`
	Remaining int32 `json:"remaining"`
}

type BookingStats struct {
	Booked     int32   `json:"booked"`
	Limit      int32   `json:"limit"`
	Percentage float64 `json:"percentage"`
}

// CompanyRollup is the per-company dashboard view for a single date.
type CompanyRollup struct {
	CompanyID  uuid.UUID       `json:"company_id"`
	Date       string          `json:"date"`
	Attendance AttendanceStats `json:"attendance"`
	Credits    CreditStats     `json:"credits"`
	Bookings   BookingStats    `json:"bookings"`
}

// SystemRollup aggregates the same figures across every company.
type SystemRollup struct {
	Date       string          `json:"date"`
	Attendance AttendanceStats `json:"attendance"`
	Credits    CreditStats     `json:"credits"`
	Bookings   BookingStats    `json:"bookings"`
	Companies  int32           `json:"companies"`
}
