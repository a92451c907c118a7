// Package token implements the token issuance collaborator on HS256 JWTs.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pixelgram/social-api/internal/core/domain"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"

	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// JWTIssuer issues refresh/access pairs. The refresh token carries the user
// identity; the access token is always derived from refresh claims rather
// than built independently. Every token gets its own uuid jti, so no two
// issuances ever produce the same string.
type JWTIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJWTIssuer(secret string, accessTTL, refreshTTL time.Duration) *JWTIssuer {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &JWTIssuer{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Issue creates a refresh token bound to the user and derives the access
// token from it.
func (i *JWTIssuer) Issue(user *domain.User) (domain.TokenPair, error) {
	refresh, err := i.signRefresh(user)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	access, err := i.AccessFromRefresh(refresh)
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// AccessFromRefresh verifies the refresh token and signs a new access token
// for the identity it carries.
func (i *JWTIssuer) AccessFromRefresh(refreshToken string) (string, error) {
	claims, err := i.parse(refreshToken, TypeRefresh)
	if err != nil {
		return "", err
	}

	userID, _ := claims["user_id"].(string)
	username, _ := claims["username"].(string)
	isStaff, _ := claims["is_staff"].(bool)

	now := time.Now().UTC()
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"token_type": TypeAccess,
		"user_id":    userID,
		"username":   username,
		"is_staff":   isStaff,
		"jti":        uuid.NewString(),
		"iat":        now.Unix(),
		"exp":        now.Add(i.accessTTL).Unix(),
	})

	signed, err := access.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// VerifyRefresh validates signature, expiry, and token type, and returns the
// claims the auth service needs for denylist checks.
func (i *JWTIssuer) VerifyRefresh(refreshToken string) (domain.RefreshClaims, error) {
	claims, err := i.parse(refreshToken, TypeRefresh)
	if err != nil {
		return domain.RefreshClaims{}, err
	}

	userID, _ := claims["user_id"].(string)
	tokenID, _ := claims["jti"].(string)
	exp, _ := claims["exp"].(float64)
	if userID == "" || tokenID == "" {
		return domain.RefreshClaims{}, domain.ErrTokenInvalid
	}

	return domain.RefreshClaims{
		UserID:    userID,
		TokenID:   tokenID,
		ExpiresAt: time.Unix(int64(exp), 0).UTC(),
	}, nil
}

func (i *JWTIssuer) signRefresh(user *domain.User) (string, error) {
	now := time.Now().UTC()
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"token_type": TypeRefresh,
		"user_id":    user.ID,
		"username":   user.Username,
		"is_staff":   user.IsStaff,
		"jti":        uuid.NewString(),
		"iat":        now.Unix(),
		"exp":        now.Add(i.refreshTTL).Unix(),
	})
	return refresh.SignedString(i.secret)
}

func (i *JWTIssuer) parse(tokenString, wantType string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}
	if tokenType, _ := claims["token_type"].(string); tokenType != wantType {
		return nil, fmt.Errorf("%w: unexpected token type", domain.ErrTokenInvalid)
	}
	return claims, nil
}
