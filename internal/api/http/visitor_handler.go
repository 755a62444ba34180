package http

import (
	"net/http"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/service"
)

type VisitorHandler struct {
	visitorSvc service.VisitorService
}

func NewVisitorHandler(visitorSvc service.VisitorService) *VisitorHandler {
	return &VisitorHandler{visitorSvc: visitorSvc}
}

type visitorRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

func (h *VisitorHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req visitorRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrConstraintViolation)
		return
	}
	visitor := &domain.Visitor{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Purpose: req.Purpose,
	}
	if err := h.visitorSvc.LogVisitor(r.Context(), actor, visitor); err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, visitor)
}

func (h *VisitorHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	visitor, err := h.visitorSvc.GetVisitor(r.Context(), actor, id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, visitor)
}

func (h *VisitorHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	visitors, err := h.visitorSvc.ListVisitors(r.Context(), actor)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, visitors)
}

func (h *VisitorHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var req visitorRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrConstraintViolation)
		return
	}
	visitor := &domain.Visitor{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Purpose: req.Purpose,
	}
	if err := h.visitorSvc.UpdateVisitor(r.Context(), actor, visitor); err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, visitor)
}

func (h *VisitorHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.visitorSvc.DeleteVisitor(r.Context(), actor, id); err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"status": "deleted"})
}
