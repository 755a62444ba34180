package http

import (
	"net/http"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/service"
)

type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

type markRequest struct {
	EmployeeID uuid.UUID               `json:"employee_id"`
	CompanyID  uuid.UUID               `json:"company_id"`
	Status     domain.AttendanceStatus `json:"status"`
	Date       string                  `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req markRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrConstraintViolation)
		return
	}
	att, err := h.attendanceSvc.Mark(r.Context(), actor, req.EmployeeID, req.CompanyID, req.Status, req.Date)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, att)
}

func (h *AttendanceHandler) History(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	page, pageSize := pagination(r)
	records, total, err := h.attendanceSvc.GetHistory(r.Context(), employeeID, page, pageSize)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, pagedResponse{Items: records, Total: total, Page: page, PageSize: pageSize})
}

func (h *AttendanceHandler) Changes(w http.ResponseWriter, r *http.Request) {
	attendanceID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	changes, err := h.attendanceSvc.GetChanges(r.Context(), attendanceID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, changes)
}
