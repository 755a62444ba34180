package postgres

import (
	"database/sql"

	"desqworx-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CompanyRepository
	repository.EmployeeRepository
	repository.CreditRepository
	repository.AttendanceRepository
	repository.BookingRepository
	repository.StatsRepository
	repository.VisitorRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		UserRepository:       NewUserRepository(db),
		CompanyRepository:    NewCompanyRepository(db),
		EmployeeRepository:   NewEmployeeRepository(db),
		CreditRepository:     NewCreditRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		BookingRepository:    NewBookingRepository(db),
		StatsRepository:      NewStatsRepository(db),
		VisitorRepository:    NewVisitorRepository(db),
	}
}
