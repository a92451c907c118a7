package ports

import "context"

// RegisterInput carries the registration form fields. ConfirmPassword is
// compared and discarded before any persistence call; neither password field
// ever reaches a result struct.
type RegisterInput struct {
	Name            string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// RegisterResult is the outward shape of a successful registration.
type RegisterResult struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResult combines the token pair with the presented profile. An explicit
// struct rather than a map merge, so a field collision between token and
// profile data cannot happen at runtime.
type LoginResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserProfile
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}
