package service

import (
	"math/rand/v2"
	"strconv"
)

const (
	// invitePrefixLen is how many leading characters of the username seed
	// the code.
	invitePrefixLen = 3

	// Inclusive range of the random numeric suffix. 9000 possible values
	// per prefix, so the retry loop converges quickly.
	inviteSuffixMin = 1001
	inviteSuffixMax = 9999
)

// InviteCodeGenerator produces candidate invite codes. Candidates are not
// guaranteed unique; the orchestrator retries against the store until one is.
type InviteCodeGenerator struct{}

// NewInviteCodeGenerator creates a new invite code generator
func NewInviteCodeGenerator() *InviteCodeGenerator {
	return &InviteCodeGenerator{}
}

// Generate derives a candidate code from the first three characters of the
// username plus a uniform random 4-digit suffix in [1001, 9999].
func (g *InviteCodeGenerator) Generate(username string) (string, error) {
	runes := []rune(username)
	if len(runes) < invitePrefixLen {
		return "", ErrUsernameTooShort
	}

	suffix := inviteSuffixMin + rand.IntN(inviteSuffixMax-inviteSuffixMin+1)
	return string(runes[:invitePrefixLen]) + strconv.Itoa(suffix), nil
}
