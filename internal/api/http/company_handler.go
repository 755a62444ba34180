package http

import (
	"net/http"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/service"
)

type CompanyHandler struct {
	companySvc service.CompanyService
}

func NewCompanyHandler(companySvc service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companySvc: companySvc}
}

type createCompanyRequest struct {
	Name             string    `json:"name"`
	AdminID          uuid.UUID `json:"admin_id"`
	SeatPrice        int32     `json:"seat_price"`
	SeatBookingLimit int32     `json:"seat_booking_limit"`
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req createCompanyRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrConstraintViolation)
		return
	}
	company := &domain.Company{
		Name:             req.Name,
		AdminID:          req.AdminID,
		SeatPrice:        req.SeatPrice,
		SeatBookingLimit: req.SeatBookingLimit,
	}
	if err := h.companySvc.CreateCompany(r.Context(), actor, company); err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, company)
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	company, err := h.companySvc.GetCompany(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, company)
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	companies, err := h.companySvc.ListCompanies(r.Context(), actor)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, companies)
}

type updateCompanyRequest struct {
	Name             string               `json:"name"`
	AdminID          uuid.UUID            `json:"admin_id"`
	SeatPrice        int32                `json:"seat_price"`
	SeatBookingLimit int32                `json:"seat_booking_limit"`
	Status           domain.CompanyStatus `json:"status"`
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var req updateCompanyRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrConstraintViolation)
		return
	}
	company := &domain.Company{
		ID:               id,
		Name:             req.Name,
		AdminID:          req.AdminID,
		SeatPrice:        req.SeatPrice,
		SeatBookingLimit: req.SeatBookingLimit,
		Status:           req.Status,
	}
	if err := h.companySvc.UpdateCompany(r.Context(), actor, company); err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, company)
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.companySvc.DeleteCompany(r.Context(), actor, id); err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"status": "deleted"})
}
