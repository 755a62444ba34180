package http

import (
	"net/http"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	CompanyID uuid.UUID `json:"company_id"`
	UserID    uuid.UUID `json:"user_id"`
	Date      string    `json:"date,omitempty"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req createBookingRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrConstraintViolation)
		return
	}
	booking, err := h.bookingSvc.CreateBooking(r.Context(), actor, req.CompanyID, req.UserID, req.Date)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.bookingSvc.CancelBooking(r.Context(), actor, id); err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (h *BookingHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	bookings, err := h.bookingSvc.ListBookingsByCompany(r.Context(), companyID, r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, bookings)
}

func (h *BookingHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	bookings, err := h.bookingSvc.ListBookingsByUser(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, bookings)
}
