package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killpowa/api/internal/model"
	"github.com/killpowa/api/internal/service"
)

// In-memory repository backing handler tests; the services on top of it are
// the real ones.
type memoryUserRepo struct {
	users  map[string]*model.User
	byCode map[string]*model.User

	getErr  error
	listErr error

	listUsers []*model.User
	listCount int64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		users:  make(map[string]*model.User),
		byCode: make(map[string]*model.User),
	}
}

func (m *memoryUserRepo) add(user *model.User) {
	m.users[user.Username] = user
	m.byCode[user.InviteCode] = user
}

func (m *memoryUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.users[username], nil
}

func (m *memoryUserRepo) GetByInviteCode(ctx context.Context, inviteCode string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.byCode[inviteCode], nil
}

func (m *memoryUserRepo) Create(ctx context.Context, username, inviteCode string, referredBy *string) error {
	m.add(&model.User{
		Username:   username,
		InviteCode: inviteCode,
		ReferredBy: referredBy,
		CreatedOn:  time.Now(),
	})
	return nil
}

func (m *memoryUserRepo) List(ctx context.Context, username, excludeUsername string, limit, skip int64) ([]*model.User, int64, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return m.listUsers, m.listCount, nil
}

func newTestStack(repo *memoryUserRepo) (*service.AuthService, *service.EventHub) {
	hub := service.NewEventHub(time.Hour)
	svc := service.NewAuthService(service.AuthServiceConfig{
		UserRepo: repo,
		Invites:  service.NewInviteCodeGenerator(),
		Tokens: service.NewTokenService(service.TokenServiceConfig{
			Secret:         "test-secret",
			Issuer:         "killpowa",
			ExpirationMins: 60,
		}),
		Events: hub,
	})
	return svc, hub
}

func postAuthenticate(t *testing.T, h *AuthHandler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/authenticate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Authenticate(rr, req)
	return rr
}

func TestAuthenticate_RegisterReturnsToken(t *testing.T) {
	repo := newMemoryUserRepo()
	svc, hub := newTestStack(repo)
	defer hub.Close()
	h := NewAuthHandler(svc)

	rr := postAuthenticate(t, h, AuthenticateRequest{Username: "alice"})

	require.Equal(t, http.StatusOK, rr.Code)

	var resp AuthenticateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotNil(t, repo.users["alice"])
}

func TestAuthenticate_LoginReturnsToken(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.add(&model.User{Username: "alice", InviteCode: "ali1234"})
	svc, hub := newTestStack(repo)
	defer hub.Close()
	h := NewAuthHandler(svc)

	rr := postAuthenticate(t, h, AuthenticateRequest{Username: "alice"})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, repo.users, 1, "login must not create users")
}

func TestAuthenticate_InvalidInviteCode(t *testing.T) {
	repo := newMemoryUserRepo()
	svc, hub := newTestStack(repo)
	defer hub.Close()
	h := NewAuthHandler(svc)

	rr := postAuthenticate(t, h, AuthenticateRequest{Username: "bob", InvitationCode: "zzz9999"})

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Invalid invite code", body["error"])
	assert.Empty(t, repo.users)
}

func TestAuthenticate_MalformedBody(t *testing.T) {
	repo := newMemoryUserRepo()
	svc, hub := newTestStack(repo)
	defer hub.Close()
	h := NewAuthHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/authenticate", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	h.Authenticate(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAuthenticate_StoreErrorIsOpaque500(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.getErr = errors.New("store down")
	svc, hub := newTestStack(repo)
	defer hub.Close()
	h := NewAuthHandler(svc)

	rr := postAuthenticate(t, h, AuthenticateRequest{Username: "alice"})

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Something went wrong", body["error"])
}
