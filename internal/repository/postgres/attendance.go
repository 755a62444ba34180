package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

type attendanceRepository struct {
	db *sql.DB
}

func NewAttendanceRepository(db *sql.DB) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) GetForDate(ctx context.Context, employeeID uuid.UUID, date string) (*domain.Attendance, error) {
	query := `SELECT id, user_id, company_id, date, status, created_at
	          FROM attendance WHERE user_id = $1 AND date = $2`
	return scanAttendance(r.db.QueryRowContext(ctx, query, employeeID, date))
}

func scanAttendance(row interface{ Scan(...any) error }) (*domain.Attendance, error) {
	var a domain.Attendance
	var date, createdAt time.Time
	if err := row.Scan(&a.ID, &a.UserID, &a.CompanyID, &date, &a.Status, &createdAt); err != nil {
		return nil, mapError(err)
	}
	a.Date = date.Format("2006-01-02")
	a.CreatedOn = createdAt.Format(time.RFC3339)
	return &a, nil
}

const insertAttendance = `INSERT INTO attendance (id, user_id, company_id, date, status) VALUES ($1, $2, $3, $4, $5)`

func (r *attendanceRepository) CreateAbsent(ctx context.Context, att *domain.Attendance) error {
	if att.ID == uuid.Nil {
		att.ID = uuid.New()
	}
	_, err := r.db.ExecContext(ctx, insertAttendance, att.ID, att.UserID, att.CompanyID, att.Date, att.Status)
	return mapError(err)
}

// CreatePresent inserts the record first so the (user_id, date) uniqueness
// constraint aborts a duplicate mark before any credits move, then charges
// through the ledger procedure. Either both commit or neither does.
func (r *attendanceRepository) CreatePresent(ctx context.Context, att *domain.Attendance, seatPrice int32, description string, chargedBy uuid.UUID) error {
	if att.ID == uuid.Nil {
		att.ID = uuid.New()
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, insertAttendance, att.ID, att.UserID, att.CompanyID, att.Date, att.Status); err != nil {
		return mapError(err)
	}
	if _, err := tx.ExecContext(ctx, `SELECT record_credit_transaction($1, $2, 'used', $3, $4)`,
		att.CompanyID, seatPrice, description, chargedBy); err != nil {
		return mapError(err)
	}
	return mapError(tx.Commit())
}

func (r *attendanceRepository) CorrectToPresent(ctx context.Context, attendanceID, companyID uuid.UUID, seatPrice int32, description string, changedBy uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT record_attendance_change($1, 'present', $2)`, attendanceID, changedBy); err != nil {
		return mapError(err)
	}
	if _, err := tx.ExecContext(ctx, `SELECT record_credit_transaction($1, $2, 'used', $3, $4)`,
		companyID, seatPrice, description, changedBy); err != nil {
		return mapError(err)
	}
	return mapError(tx.Commit())
}

// CorrectToAbsent refunds the seat price straight onto the balance. The
// refund deliberately skips credit_history: corrections are not chargeable
// events, so logging them would double-count "used" totals.
func (r *attendanceRepository) CorrectToAbsent(ctx context.Context, attendanceID, companyID uuid.UUID, seatPrice int32, changedBy uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT record_attendance_change($1, 'absent', $2)`, attendanceID, changedBy); err != nil {
		return mapError(err)
	}
	result, err := tx.ExecContext(ctx, `UPDATE companies SET credits = credits + $2 WHERE id = $1`, companyID, seatPrice)
	if err != nil {
		return mapError(err)
	}
	if err := requireRow(result); err != nil {
		return err
	}
	return mapError(tx.Commit())
}

func (r *attendanceRepository) ListWithChanges(ctx context.Context, employeeID uuid.UUID, page, pageSize int32) ([]domain.AttendanceWithChanges, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, user_id, company_id, date, status, created_at
	          FROM attendance WHERE user_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, employeeID, pageSize, offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var records []domain.AttendanceWithChanges
	var ids []uuid.UUID
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, domain.AttendanceWithChanges{Attendance: *a})
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}

	var count int32
	countQuery := `SELECT count(*) FROM attendance WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, employeeID).Scan(&count); err != nil {
		return nil, 0, mapError(err)
	}

	if len(ids) == 0 {
		return records, count, nil
	}

	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}
	changes, err := r.listChangesForSet(ctx, strIDs)
	if err != nil {
		return nil, 0, err
	}
	byAttendance := make(map[uuid.UUID][]domain.AttendanceChange, len(records))
	for _, ch := range changes {
		byAttendance[ch.AttendanceID] = append(byAttendance[ch.AttendanceID], ch)
	}
	for i := range records {
		records[i].Changes = byAttendance[records[i].ID]
	}
	return records, count, nil
}

const changeColumns = `id, attendance_id, old_status, new_status, changed_by, created_at`

func (r *attendanceRepository) listChangesForSet(ctx context.Context, attendanceIDs []string) ([]domain.AttendanceChange, error) {
	query := `SELECT ` + changeColumns + ` FROM attendance_history
	          WHERE attendance_id = ANY($1) ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(attendanceIDs))
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	return collectChanges(rows)
}

func (r *attendanceRepository) ListChanges(ctx context.Context, attendanceID uuid.UUID) ([]domain.AttendanceChange, error) {
	query := `SELECT ` + changeColumns + ` FROM attendance_history
	          WHERE attendance_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, attendanceID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	return collectChanges(rows)
}

func collectChanges(rows *sql.Rows) ([]domain.AttendanceChange, error) {
	var changes []domain.AttendanceChange
	for rows.Next() {
		var ch domain.AttendanceChange
		var createdAt time.Time
		if err := rows.Scan(&ch.ID, &ch.AttendanceID, &ch.OldStatus, &ch.NewStatus, &ch.ChangedBy, &createdAt); err != nil {
			return nil, mapError(err)
		}
		ch.CreatedOn = createdAt.Format(time.RFC3339)
		changes = append(changes, ch)
	}
	return changes, mapError(rows.Err())
}
