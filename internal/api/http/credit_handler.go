package http

import (
	"net/http"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/service"
)

type CreditHandler struct {
	creditSvc service.CreditService
}

func NewCreditHandler(creditSvc service.CreditService) *CreditHandler {
	return &CreditHandler{creditSvc: creditSvc}
}

type creditChangeRequest struct {
	Amount      int32  `json:"amount"`
	Description string `json:"description"`
}

type balanceResponse struct {
	Balance int32 `json:"balance"`
}

func (h *CreditHandler) Add(w http.ResponseWriter, r *http.Request) {
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
	var req creditChangeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrInvalidAmount)
		return
	}
	balance, err := h.creditSvc.AddCredits(r.Context(), actor, companyID, req.Amount, req.Description)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, balanceResponse{Balance: balance})
}

func (h *CreditHandler) Deduct(w http.ResponseWriter, r *http.Request) {
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
	var req creditChangeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrInvalidAmount)
		return
	}
	balance, err := h.creditSvc.Deduct(r.Context(), actor, companyID, req.Amount, req.Description)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, balanceResponse{Balance: balance})
}

type setCreditsRequest struct {
	Credits int32 `json:"credits"`
}

func (h *CreditHandler) Set(w http.ResponseWriter, r *http.Request) {
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
	var req setCreditsRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrInvalidAmount)
		return
	}
	if err := h.creditSvc.SetCredits(r.Context(), actor, companyID, req.Credits); err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, balanceResponse{Balance: req.Credits})
}

func (h *CreditHandler) Balance(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	balance, err := h.creditSvc.GetBalance(r.Context(), companyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, balanceResponse{Balance: balance})
}

func (h *CreditHandler) History(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	page, pageSize := pagination(r)
	entries, total, err := h.creditSvc.GetHistory(r.Context(), companyID, page, pageSize)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, pagedResponse{Items: entries, Total: total, Page: page, PageSize: pageSize})
}
