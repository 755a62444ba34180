package domain

import "github.com/google/uuid"

type CreditAction string

const (
	CreditActionAssigned CreditAction = "assigned"
	CreditActionUsed     CreditAction = "used"
)

// CreditEntry is one append-only row of a company's credit ledger. Amount is
// always positive; the action carries the direction. PreviousBalance and
// NewBalance are captured inside the recording procedure so the trail stays
// consistent under concurrent writers.
//
// Refunds issued when a present mark is corrected to absent intentionally
// bypass this ledger (see AttendanceService.Mark).
type CreditEntry struct {
	ID              uuid.UUID    `json:"id"`
	CompanyID       uuid.UUID    `json:"company_id"`
	Amount          int32        `json:"amount"`
	Action          CreditAction `json:"action"`
	Description     string       `json:"description"`
	PreviousBalance int32        `json:"previous_balance"`
	NewBalance      int32        `json:"new_balance"`
	CreatedBy       uuid.UUID    `json:"created_by"`
	CreatedOn       string       `json:"created_on"`
}
