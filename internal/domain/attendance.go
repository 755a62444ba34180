package domain

import "github.com/google/uuid"

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
)

// Attendance is the single record for one employee on one calendar date,
// unique on (user_id, date). A correction updates the row in place; it never
// creates a second one.
type Attendance struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	CompanyID uuid.UUID        `json:"company_id"`
	Date      string           `json:"date"` // YYYY-MM-DD
	Status    AttendanceStatus `json:"status"`
	CreatedOn string           `json:"created_on"`
}

// AttendanceChange is an append-only audit row recording one status
// transition on an attendance record.
type AttendanceChange struct {
	ID           uuid.UUID        `json:"id"`
	AttendanceID uuid.UUID        `json:"attendance_id"`
	OldStatus    AttendanceStatus `json:"old_status"`
	NewStatus    AttendanceStatus `json:"new_status"`
	ChangedBy    uuid.UUID        `json:"changed_by"`
	CreatedOn    string           `json:"created_on"`
}

// AttendanceWithChanges pairs an attendance record with its change trail for
// the history view.
type AttendanceWithChanges struct {
	Attendance
	Changes []AttendanceChange `json:"changes"`
}
