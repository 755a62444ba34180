package http

import (
	"net/http"

	"desqworx-backend/internal/service"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

func (h *DashboardHandler) CompanyRollup(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	rollup, err := h.dashboardSvc.CompanyRollup(r.Context(), companyID, r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, rollup)
}

func (h *DashboardHandler) SystemRollup(w http.ResponseWriter, r *http.Request) {
	rollup, err := h.dashboardSvc.SystemRollup(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, rollup)
}
