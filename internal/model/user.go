package model

import "time"

// User represents a registered account.
//
// Username and InviteCode are immutable once created; ReferredBy is set only
// at registration. Referrals is derived on every read (count of users whose
// referred_by names this user) and is never stored.
type User struct {
	UID        string    `json:"-"`
	Username   string    `json:"username"`
	InviteCode string    `json:"inviteCode"`
	ReferredBy *string   `json:"referredBy"`
	Referrals  int64     `json:"referrals"`
	CreatedOn  time.Time `json:"-"`
}

// IsReferred returns true if the user registered through someone's invite code
func (u *User) IsReferred() bool {
	return u.ReferredBy != nil && *u.ReferredBy != ""
}
