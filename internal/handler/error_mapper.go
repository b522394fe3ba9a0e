package handler

import (
	"errors"
	"log/slog"

	"github.com/killpowa/api/internal/model"
	"github.com/killpowa/api/internal/service"
)

// MapServiceError translates service layer errors to API errors. Anything not
// explicitly mapped becomes an opaque 500; the real cause goes to the log, not
// the client.
func MapServiceError(err error) *model.APIError {
	switch {
	case errors.Is(err, service.ErrInvalidInviteCode):
		return model.NewInvalidInviteCodeError()
	case errors.Is(err, service.ErrUsernameTooShort):
		return model.NewBadRequestError("Username is too short")
	case errors.Is(err, service.ErrAuthentication):
		return model.NewUnauthorizedError()
	default:
		slog.Error("unhandled service error", slog.Any("error", err))
		return model.NewServerError()
	}
}
