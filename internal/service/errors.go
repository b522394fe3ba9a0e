package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

var (
	// ErrInvalidInviteCode is returned when a registration names an invite
	// code with no owner. No user is created.
	ErrInvalidInviteCode = errors.New("invalid invite code")

	// ErrAuthentication covers every token failure uniformly: missing,
	// malformed, bad signature, expired, or a subject that no longer
	// resolves. The individual causes are deliberately not distinguished.
	ErrAuthentication = errors.New("authentication failed")

	// ErrUsernameTooShort is returned when a username cannot seed an invite
	// code prefix.
	ErrUsernameTooShort = errors.New("username is too short")

	// ErrInviteCodeSpace is returned when the bounded uniqueness loop ran
	// out of attempts without finding a free code.
	ErrInviteCodeSpace = errors.New("could not allocate a unique invite code")

	// ErrUserNotFound is returned when a lookup expected to resolve a user
	// came back empty.
	ErrUserNotFound = errors.New("user not found")
)
