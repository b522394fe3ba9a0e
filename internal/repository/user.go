package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/killpowa/api/internal/database"
	"github.com/killpowa/api/internal/model"
)

// selectUser is the shared projection for user reads. The referral count is
// computed per read from referred_by back-references, never stored.
const selectUser = `
	SELECT
		uid,
		username,
		invite_code,
		referred_by,
		created_on,
		(SELECT count() FROM users WHERE referred_by = $parent.username GROUP ALL)[0].count OR 0 AS referrals
	FROM users
`

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername retrieves a user by username. Returns (nil, nil) when no
// user owns the username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := selectUser + ` WHERE username = $username LIMIT 1`
	vars := map[string]interface{}{"username": username}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUserRow(result)
}

// GetByInviteCode retrieves the owner of an invite code. Returns (nil, nil)
// when no user owns the code.
func (r *UserRepository) GetByInviteCode(ctx context.Context, inviteCode string) (*model.User, error) {
	query := selectUser + ` WHERE invite_code = $invite_code LIMIT 1`
	vars := map[string]interface{}{"invite_code": inviteCode}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUserRow(result)
}

// Create persists a new user record. The store's unique indexes on username
// and invite_code are the last line of defense against concurrent
// registrations generating the same code; violations surface as ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, username, inviteCode string, referredBy *string) error {
	query := `
		CREATE users CONTENT {
			uid: $uid,
			username: $username,
			invite_code: $invite_code,
			referred_by: IF $referred_by IS NOT NULL THEN $referred_by ELSE NONE END,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"uid":         uuid.New().String(),
		"username":    username,
		"invite_code": inviteCode,
		"referred_by": ptrToNone(referredBy),
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: username or invite code already exists", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// List returns a page of users (newest first) and the total count matching
// the filter. The requesting user is always excluded; username filters by
// substring match when non-empty.
func (r *UserRepository) List(ctx context.Context, username, excludeUsername string, limit, skip int64) ([]*model.User, int64, error) {
	filter := ` WHERE username != $exclude_username`
	vars := map[string]interface{}{
		"exclude_username": excludeUsername,
		"limit":            limit,
		"skip":             skip,
	}
	if username != "" {
		filter += ` AND string::contains(username, $search)`
		vars["search"] = username
	}

	rowsQuery := selectUser + filter + ` ORDER BY created_on DESC LIMIT $limit START $skip`

	result, err := r.db.Query(ctx, rowsQuery, vars)
	if err != nil {
		return nil, 0, err
	}

	rows, ok := extractQueryResults(result)
	if !ok {
		rows = nil
	}

	users := make([]*model.User, 0, len(rows))
	for _, row := range rows {
		user, err := parseUserRow(row)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}

	countQuery := `SELECT count() AS count FROM users` + filter + ` GROUP ALL`

	countResult, err := r.db.QueryOne(ctx, countQuery, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return users, 0, nil
		}
		return nil, 0, err
	}

	return users, extractCount(countResult), nil
}

// parseUserRow maps a single result row to a model.User
func parseUserRow(row interface{}) (*model.User, error) {
	data, ok := row.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	return &model.User{
		UID:        getString(data, "uid"),
		Username:   getString(data, "username"),
		InviteCode: getString(data, "invite_code"),
		ReferredBy: getStringPtr(data, "referred_by"),
		Referrals:  getInt64(data, "referrals"),
		CreatedOn:  getTime(data, "created_on"),
	}, nil
}
