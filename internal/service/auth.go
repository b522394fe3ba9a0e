package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/killpowa/api/internal/model"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (*model.User, error)
	Create(ctx context.Context, username, inviteCode string, referredBy *string) error
	List(ctx context.Context, username, excludeUsername string, limit, skip int64) ([]*model.User, int64, error)
}

// AuthService is the authenticate-or-register orchestrator. It holds no
// state between calls; each request is a single pass over the store.
type AuthService struct {
	userRepo          UserRepository
	invites           *InviteCodeGenerator
	tokens            *TokenService
	events            *EventHub
	inviteMaxAttempts int
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo UserRepository
	Invites  *InviteCodeGenerator
	Tokens   *TokenService
	Events   *EventHub
	// InviteMaxAttempts bounds the retry-until-unique invite code loop;
	// 0 means unbounded.
	InviteMaxAttempts int
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:          cfg.UserRepo,
		invites:           cfg.Invites,
		tokens:            cfg.Tokens,
		events:            cfg.Events,
		inviteMaxAttempts: cfg.InviteMaxAttempts,
	}
}

// Authenticate logs the user in if the username exists, otherwise registers
// a new account (linking a referrer when an invitation code is supplied) and
// returns a signed token either way. Event publication is fire-and-forget
// and always precedes token issuance.
func (s *AuthService) Authenticate(ctx context.Context, username, invitationCode string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if user != nil {
		// Login. A supplied invitation code is ignored.
		s.events.Publish(NewLoginEvent(user))
		return s.tokens.Issue(user.Username)
	}

	return s.register(ctx, username, invitationCode)
}

func (s *AuthService) register(ctx context.Context, username, invitationCode string) (string, error) {
	var referredBy *string
	if invitationCode != "" {
		referrer, err := s.userRepo.GetByInviteCode(ctx, invitationCode)
		if err != nil {
			return "", err
		}
		if referrer == nil {
			return "", ErrInvalidInviteCode
		}
		referredBy = &referrer.Username
	}

	inviteCode, err := s.generateUniqueInviteCode(ctx, username)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.Create(ctx, username, inviteCode, referredBy); err != nil {
		return "", err
	}

	// Re-read so the response token and events carry the server-computed
	// record (referral count, canonical casing).
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("%w: %s vanished after create", ErrUserNotFound, username)
	}

	if user.IsReferred() {
		s.events.Publish(NewReferralEvent(*user.ReferredBy, user.Username))
	}
	s.events.Publish(NewRegisterEvent(user))

	return s.tokens.Issue(user.Username)
}

// generateUniqueInviteCode retries candidates against the store until one has
// no owner. The store's unique index still backstops the window between this
// check and the create.
func (s *AuthService) generateUniqueInviteCode(ctx context.Context, username string) (string, error) {
	for attempt := 1; ; attempt++ {
		code, err := s.invites.Generate(username)
		if err != nil {
			return "", err
		}

		owner, err := s.userRepo.GetByInviteCode(ctx, code)
		if err != nil {
			return "", err
		}
		if owner == nil {
			return code, nil
		}

		slog.Info("invite code collision, regenerating",
			slog.String("username", username),
			slog.Int("attempt", attempt),
		)

		if s.inviteMaxAttempts > 0 && attempt >= s.inviteMaxAttempts {
			return "", ErrInviteCodeSpace
		}
	}
}

// GetUserByUsername resolves a user or returns ErrUserNotFound
func (s *AuthService) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListUsersQuery describes a paged user search request
type ListUsersQuery struct {
	// Username filters by substring match when non-empty.
	Username string
	Page     int64
	Limit    int64
}

// UserPage is one page of a user listing
type UserPage struct {
	Users       []*model.User
	HasNext     bool
	HasPrev     bool
	CurrentPage int64
	TotalPages  int64
}

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListUsers returns a page of users excluding the requesting user, newest
// first. Pagination is 1-indexed; totalPages preserves the historical
// count/limit+1 formula, which yields an extra page when count is an exact
// multiple of limit.
func (s *AuthService) ListUsers(ctx context.Context, authUsername string, q ListUsersQuery) (*UserPage, error) {
	page := q.Page
	if page < 1 {
		page = defaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	skip := (page - 1) * limit

	users, count, err := s.userRepo.List(ctx, q.Username, authUsername, limit, skip)
	if err != nil {
		return nil, err
	}

	totalPages := (count / limit) + 1
	return &UserPage{
		Users:       users,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}
