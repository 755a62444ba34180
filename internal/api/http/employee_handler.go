package http

import (
	"net/http"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/service"
)

type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

type createEmployeeRequest struct {
	CompanyID uuid.UUID `json:"company_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req createEmployeeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrConstraintViolation)
		return
	}
	employee := &domain.Employee{
		CompanyID: req.CompanyID,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := h.employeeSvc.CreateEmployee(r.Context(), actor, employee); err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	employee, err := h.employeeSvc.GetEmployee(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	companyID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	employees, err := h.employeeSvc.ListEmployees(r.Context(), actor, companyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, employees)
}

type employeeStatusRequest struct {
	Status domain.EmployeeStatus `json:"status"`
}

func (h *EmployeeHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
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
	var req employeeStatusRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrConstraintViolation)
		return
	}
	if err := h.employeeSvc.SetEmployeeStatus(r.Context(), actor, id, req.Status); err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"status": string(req.Status)})
}
