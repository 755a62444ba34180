package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	companyRepo repository.CompanyRepository
}

func NewBookingService(bookingRepo repository.BookingRepository, companyRepo repository.CompanyRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo, companyRepo: companyRepo}
}

func (s *bookingService) CreateBooking(ctx context.Context, actor domain.Actor, companyID, userID uuid.UUID, date string) (*domain.SeatBooking, error) {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBooking(actor, company, userID); err != nil {
		return nil, err
	}

	if company.Credits < company.SeatPrice {
		return nil, fmt.Errorf("%w: company does not have enough credits for booking", domain.ErrInsufficientCredits)
	}

	confirmed, err := s.bookingRepo.CountConfirmed(ctx, companyID, date)
	if err != nil {
		return nil, err
	}
	if confirmed >= company.SeatBookingLimit {
		return nil, fmt.Errorf("%w: daily booking limit reached for this company", domain.ErrConstraintViolation)
	}

	existing, err := s.bookingRepo.GetUserBookingForDate(ctx, userID, date)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user already has a booking for this date", domain.ErrConstraintViolation)
	}

	booking := &domain.SeatBooking{
		CompanyID: companyID,
		UserID:    userID,
		Date:      date,
		Status:    domain.BookingStatusConfirmed,
	}
	description := fmt.Sprintf("Seat booking for %s", date)
	if err := s.bookingRepo.CreateConfirmed(ctx, booking, company.SeatPrice, description, actor.UserID); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actor domain.Actor, bookingID uuid.UUID) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.Status == domain.BookingStatusCancelled {
		return fmt.Errorf("%w: booking is already cancelled", domain.ErrConstraintViolation)
	}

	company, err := s.companyRepo.GetByID(ctx, booking.CompanyID)
	if err != nil {
		return err
	}
	if err := s.authorizeBooking(actor, company, booking.UserID); err != nil {
		return err
	}

	description := fmt.Sprintf("Refund for cancelled booking on %s", booking.Date)
	return s.bookingRepo.CancelConfirmed(ctx, bookingID, booking.CompanyID, company.SeatPrice, description, actor.UserID)
}

func (s *bookingService) ListBookingsByCompany(ctx context.Context, companyID uuid.UUID, date string) ([]domain.SeatBooking, error) {
	return s.bookingRepo.ListByCompany(ctx, companyID, date)
}

func (s *bookingService) ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]domain.SeatBooking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// authorizeBooking: admins manage bookings for their own company, employees
// only their own seat.
func (s *bookingService) authorizeBooking(actor domain.Actor, company *domain.Company, userID uuid.UUID) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	switch actor.Role {
	case domain.RoleSuperAdmin:
		return nil
	case domain.RoleAdmin:
		if company.AdminID == actor.UserID {
			return nil
		}
		return domain.ErrForbidden
	case domain.RoleEmployee:
		if userID == actor.UserID {
			return nil
		}
		return domain.ErrForbidden
	}
	return domain.ErrUnauthenticated
}
