package ports

import (
	"context"
	"time"

	"github.com/pixelgram/social-api/internal/core/domain"
)

// TokenIssuer produces and verifies bearer credentials. Issue binds a fresh
// refresh token to the user identity and derives the access token from its
// claims; the same call never reuses a prior token string.
type TokenIssuer interface {
	Issue(user *domain.User) (domain.TokenPair, error)
	AccessFromRefresh(refreshToken string) (string, error)
	VerifyRefresh(refreshToken string) (domain.RefreshClaims, error)
}

// TokenDenylist records revoked refresh tokens by token ID until they would
// have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// MediaResolver maps an opaque picture reference to a public delivery URL.
type MediaResolver interface {
	ResolveURL(publicID string) (string, error)
}
