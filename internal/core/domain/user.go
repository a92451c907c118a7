package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrSelfFollow         = errors.New("users cannot follow themselves")
)

// Collaborator boundary errors. Failures from the token issuer, the token
// denylist, and the media resolver are wrapped in one of these sentinels so
// the transport layer can map them deterministically.
var (
	ErrTokenIssuance    = errors.New("token issuance failed")
	ErrTokenInvalid     = errors.New("invalid token")
	ErrTokenRevoked     = errors.New("token has been revoked")
	ErrMediaUnavailable = errors.New("media resolution failed")
)

// User models an account holder. PasswordHash never leaves the process: the
// outward shape is built by the profile presenter from an allow-list of fields.
type User struct {
	ID             string
	Username       string
	Name           string
	Email          string
	PasswordHash   string
	Bio            string
	ProfilePicture string // opaque media reference, resolved at read time
	IsStaff        bool
	Following      []string // user IDs this user follows; followers is derived
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Follows reports whether the user's following set contains targetID.
func (u *User) Follows(targetID string) bool {
	for _, id := range u.Following {
		if id == targetID {
			return true
		}
	}
	return false
}

// TokenPair is one issuance: a refresh token and the access token derived
// from it. Both strings are opaque to callers.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RefreshClaims is the verified content of a refresh token, exposed so the
// auth service can consult the denylist and compute revocation TTLs.
type RefreshClaims struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}
