package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

// dashboardService computes read-only rollups per request. It holds no
// cached state; every call queries the store with the caller's context.
type dashboardService struct {
	statsRepo   repository.StatsRepository
	companyRepo repository.CompanyRepository
}

func NewDashboardService(statsRepo repository.StatsRepository, companyRepo repository.CompanyRepository) DashboardService {
	return &dashboardService{statsRepo: statsRepo, companyRepo: companyRepo}
}

func (s *dashboardService) CompanyRollup(ctx context.Context, companyID uuid.UUID, date string) (*domain.CompanyRollup, error) {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	attendance, err := s.attendanceStats(ctx, &companyID, date)
	if err != nil {
		return nil, err
	}
	credits, err := s.creditStats(ctx, &companyID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingStats(ctx, &companyID, date, company.SeatBookingLimit)
	if err != nil {
		return nil, err
	}

	return &domain.CompanyRollup{
		CompanyID:  companyID,
		Date:       date,
		Attendance: *attendance,
		Credits:    *credits,
		Bookings:   *bookings,
	}, nil
}

func (s *dashboardService) SystemRollup(ctx context.Context, date string) (*domain.SystemRollup, error) {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	attendance, err := s.attendanceStats(ctx, nil, date)
	if err != nil {
		return nil, err
	}
	credits, err := s.creditStats(ctx, nil)
	if err != nil {
		return nil, err
	}
	limit, err := s.statsRepo.SumBookingLimits(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingStats(ctx, nil, date, limit)
	if err != nil {
		return nil, err
	}
	companies, err := s.statsRepo.CountCompanies(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SystemRollup{
		Date:       date,
		Attendance: *attendance,
		Credits:    *credits,
		Bookings:   *bookings,
		Companies:  companies,
	}, nil
}

func (s *dashboardService) attendanceStats(ctx context.Context, companyID *uuid.UUID, date string) (*domain.AttendanceStats, error) {
	present, err := s.statsRepo.CountPresent(ctx, companyID, date)
	if err != nil {
		return nil, err
	}
	total, err := s.statsRepo.CountEmployees(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &domain.AttendanceStats{
		Present: present,
		Absent:  total - present,
		Total:   total,
	}, nil
}

// creditStats derives totals from balances plus the ledger: used is the sum
// of 'used' entries, total is the remaining balance plus what was used.
func (s *dashboardService) creditStats(ctx context.Context, companyID *uuid.UUID) (*domain.CreditStats, error) {
	remaining, err := s.statsRepo.SumBalances(ctx, companyID)
	if err != nil {
		return nil, err
	}
	used, err := s.statsRepo.SumEntries(ctx, companyID, domain.CreditActionUsed)
	if err != nil {
		return nil, err
	}
	return &domain.CreditStats{
		Total:     remaining + used,
		Used:      used,
		Remaining: remaining,
	}, nil
}

func (s *dashboardService) bookingStats(ctx context.Context, companyID *uuid.UUID, date string, limit int32) (*domain.BookingStats, error) {
	booked, err := s.statsRepo.CountConfirmedBookings(ctx, companyID, date)
	if err != nil {
		return nil, err
	}
	percentage := 0.0
	if limit > 0 {
		percentage = float64(booked) / float64(limit) * 100
	}
	return &domain.BookingStats{
		Booked:     booked,
		Limit:      limit,
		Percentage: percentage,
	}, nil
}
