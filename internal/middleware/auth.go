package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/killpowa/api/internal/model"
	"github.com/killpowa/api/internal/service"
)

// TokenVerifier defines the interface for token validation
type TokenVerifier interface {
	Verify(tokenString string) (*service.Claims, error)
}

// UserResolver defines the interface for resolving the token subject to a
// stored user.
type UserResolver interface {
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// Auth returns a middleware that validates bearer tokens and resolves the
// subject against the store on every request, so a token for a deleted user
// stops working immediately. All failures collapse to the same 401 body.
func Auth(tokens TokenVerifier, users UserResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				model.NewUnauthorizedError().WriteJSON(w)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				model.NewUnauthorizedError().WriteJSON(w)
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				model.NewUnauthorizedError().WriteJSON(w)
				return
			}

			user, err := users.GetUserByUsername(r.Context(), claims.Username())
			if err != nil {
				model.NewUnauthorizedError().WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser extracts the authenticated user from context
func GetUser(ctx context.Context) *model.User {
	if user, ok := ctx.Value(UserKey).(*model.User); ok {
		return user
	}
	return nil
}
