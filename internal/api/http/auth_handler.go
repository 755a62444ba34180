package http

import (
	"net/http"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrUnauthenticated)
		return
	}
	user, token, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, loginResponse{User: user, AccessToken: token})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	user, err := h.authSvc.GetProfile(r.Context(), actor)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req updateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrConstraintViolation)
		return
	}
	user, err := h.authSvc.UpdateProfile(r.Context(), actor, req.FullName, req.Email, req.Phone)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req changePasswordRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, domain.ErrConstraintViolation)
		return
	}
	if err := h.authSvc.ChangePassword(r.Context(), actor, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"status": "password updated"})
}
