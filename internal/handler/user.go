package handler

import (
	"net/http"
	"strconv"

	"github.com/killpowa/api/internal/middleware"
	"github.com/killpowa/api/internal/model"
	"github.com/killpowa/api/internal/service"
)

// UserHandler handles user read endpoints
type UserHandler struct {
	authService *service.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// ListUsersResponse is one page of users plus navigation flags
type ListUsersResponse struct {
	Users       []*model.User `json:"users"`
	HasNext     bool          `json:"hasNext"`
	HasPrev     bool          `json:"hasPrev"`
	CurrentPage int64         `json:"currentPage"`
	TotalPages  int64         `json:"totalPages"`
}

// Me handles GET /users/me and returns the authenticated user's own record
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		WriteError(w, model.NewUnauthorizedError())
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// List handles GET /users: a paged, newest-first listing of every user
// except the requester, optionally filtered by username substring.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		WriteError(w, model.NewUnauthorizedError())
		return
	}

	query := service.ListUsersQuery{
		Username: r.URL.Query().Get("username"),
	}

	var err error
	if query.Page, err = queryInt64(r, "page"); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid page parameter"))
		return
	}
	if query.Limit, err = queryInt64(r, "limit"); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid limit parameter"))
		return
	}

	page, err := h.authService.ListUsers(r.Context(), user.Username, query)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	users := page.Users
	if users == nil {
		users = []*model.User{}
	}

	WriteJSON(w, http.StatusOK, ListUsersResponse{
		Users:       users,
		HasNext:     page.HasNext,
		HasPrev:     page.HasPrev,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	})
}

// queryInt64 parses an optional integer query parameter, 0 when absent
func queryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
