package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository/postgres"
)

func TestAttendanceRepository_CreatePresent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAttendanceRepository(db)
	ctx := context.Background()
	companyID := uuid.New()
	employeeID := uuid.New()
	actorID := uuid.New()

	t.Run("InsertsThenChargesInOneTransaction", func(t *testing.T) {
		att := &domain.Attendance{
			UserID:    employeeID,
			CompanyID: companyID,
			Date:      "2026-03-02",
			Status:    domain.AttendanceStatusPresent,
		}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO attendance").
			WithArgs(sqlmock.AnyArg(), employeeID, companyID, "2026-03-02", domain.AttendanceStatusPresent).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("SELECT record_credit_transaction").
			WithArgs(companyID, int32(10), "Attendance marked for 2026-03-02", actorID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreatePresent(ctx, att, 10, "Attendance marked for 2026-03-02", actorID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateMarkRollsBackBeforeCharging", func(t *testing.T) {
		att := &domain.Attendance{
			UserID:    employeeID,
			CompanyID: companyID,
			Date:      "2026-03-02",
			Status:    domain.AttendanceStatusPresent,
		}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO attendance").
			WithArgs(sqlmock.AnyArg(), employeeID, companyID, "2026-03-02", domain.AttendanceStatusPresent).
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
		mock.ExpectRollback()

		err := repo.CreatePresent(ctx, att, 10, "Attendance marked for 2026-03-02", actorID)
		assert.ErrorIs(t, err, domain.ErrConstraintViolation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsufficientCreditsRollsBackTheInsert", func(t *testing.T) {
		att := &domain.Attendance{
			UserID:    employeeID,
			CompanyID: companyID,
			Date:      "2026-03-03",
			Status:    domain.AttendanceStatusPresent,
		}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO attendance").
			WithArgs(sqlmock.AnyArg(), employeeID, companyID, "2026-03-03", domain.AttendanceStatusPresent).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("SELECT record_credit_transaction").
			WithArgs(companyID, int32(10), "Attendance marked for 2026-03-03", actorID).
			WillReturnError(&pq.Error{Code: "CR001", Message: "insufficient credits"})
		mock.ExpectRollback()

		err := repo.CreatePresent(ctx, att, 10, "Attendance marked for 2026-03-03", actorID)
		assert.ErrorIs(t, err, domain.ErrInsufficientCredits)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAttendanceRepository_CorrectToPresent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAttendanceRepository(db)
	ctx := context.Background()
	attendanceID := uuid.New()
	companyID := uuid.New()
	actorID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("SELECT record_attendance_change").
		WithArgs(attendanceID, actorID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("SELECT record_credit_transaction").
		WithArgs(companyID, int32(10), "Attendance marked for 2026-03-02", actorID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.CorrectToPresent(ctx, attendanceID, companyID, 10, "Attendance marked for 2026-03-02", actorID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_CorrectToAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAttendanceRepository(db)
	ctx := context.Background()
	attendanceID := uuid.New()
	companyID := uuid.New()
	actorID := uuid.New()

	t.Run("RefundWritesBalanceDirectly", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("SELECT record_attendance_change").
			WithArgs(attendanceID, actorID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		// The refund is a plain balance update; no ledger procedure runs.
		mock.ExpectExec("UPDATE companies SET credits = credits").
			WithArgs(companyID, int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CorrectToAbsent(ctx, attendanceID, companyID, 10, actorID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissingCompanyRollsBack", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("SELECT record_attendance_change").
			WithArgs(attendanceID, actorID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE companies SET credits = credits").
			WithArgs(companyID, int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.CorrectToAbsent(ctx, attendanceID, companyID, 10, actorID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAttendanceRepository_GetForDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAttendanceRepository(db)
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		now := sqlmockTime(t)
		mock.ExpectQuery("SELECT (.+) FROM attendance WHERE user_id").
			WithArgs(employeeID, "2026-03-02").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "company_id", "date", "status", "created_at"}).
				AddRow(uuid.New(), employeeID, uuid.New(), now, "present", now))

		att, err := repo.GetForDate(ctx, employeeID, "2026-03-02")
		require.NoError(t, err)
		assert.Equal(t, domain.AttendanceStatusPresent, att.Status)
		assert.Equal(t, "2026-03-02", att.Date)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM attendance WHERE user_id").
			WithArgs(employeeID, "2026-03-05").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "company_id", "date", "status", "created_at"}))

		_, err := repo.GetForDate(ctx, employeeID, "2026-03-05")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
