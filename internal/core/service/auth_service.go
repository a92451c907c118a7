package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pixelgram/social-api/internal/core/domain"
	"github.com/pixelgram/social-api/internal/core/ports"
)

// AuthService implements registration, login, token refresh, and logout.
type AuthService struct {
	repo      ports.UserRepository
	issuer    ports.TokenIssuer
	denylist  ports.TokenDenylist
	presenter *ProfilePresenter
	log       zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	issuer ports.TokenIssuer,
	denylist ports.TokenDenylist,
	presenter *ProfilePresenter,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:      repo,
		issuer:    issuer,
		denylist:  denylist,
		presenter: presenter,
		log:       log,
	}
}

// Register creates one user and issues its first token pair.
//
// The password confirmation check runs before any persistence call, so a
// mismatch never leaves a partial user behind. The raw password is discarded
// right after hashing and never logged. User creation and token issuance are
// not transactional: if issuance fails the user stays persisted and the error
// reports it, so the client recovers by logging in.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	pair, err := s.issuer.Issue(created)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", created.ID).Msg("token issuance failed after user creation")
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenIssuance, err)
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return &ports.RegisterResult{
		ID:           created.ID,
		Username:     created.Username,
		Name:         created.Name,
		Email:        created.Email,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Login verifies credentials and returns a fresh token pair combined with the
// presented profile in one flat result.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenIssuance, err)
	}

	profile, err := s.presenter.Present(user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.LoginResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserProfile:  profile,
	}, nil
}

// Refresh exchanges a refresh token for a new access token, rejecting tokens
// that have been revoked through logout.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return "", fmt.Errorf("denylist check: %w", err)
	}
	if revoked {
		return "", domain.ErrTokenRevoked
	}

	access, err := s.issuer.AccessFromRefresh(refreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTokenIssuance, err)
	}
	return access, nil
}

// Logout revokes the refresh token for its remaining lifetime. Revoking an
// already revoked token is a no-op.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) {
			// Expired or malformed tokens need no revocation.
			return nil
		}
		return err
	}

	if err := s.denylist.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.log.Info().Str("user_id", claims.UserID).Msg("refresh token revoked")
	return nil
}
