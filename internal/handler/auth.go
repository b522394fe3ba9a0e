package handler

import (
	"net/http"

	"github.com/killpowa/api/internal/model"
	"github.com/killpowa/api/internal/service"
)

// AuthHandler handles the authenticate-or-register endpoint
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AuthenticateRequest is the login/registration request body
type AuthenticateRequest struct {
	Username       string `json:"username"`
	InvitationCode string `json:"invitationCode"`
}

// AuthenticateResponse carries the signed token
type AuthenticateResponse struct {
	Token string `json:"token"`
}

// Authenticate handles POST /authenticate. Existing usernames log in, new
// ones register; both come back with a token.
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req AuthenticateRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	token, err := h.authService.Authenticate(r.Context(), req.Username, req.InvitationCode)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, AuthenticateResponse{Token: token})
}
