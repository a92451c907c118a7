package handler

import "github.com/pixelgram/social-api/internal/core/ports"

// --- Request types ---

type registerRequest struct {
	Name            string `json:"name"            validate:"required"`
	Username        string `json:"username"        validate:"required,min=3,max=30"`
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- Response types ---
//
// Transport-owned shapes, separate from ports types so the JSON contract is
// not coupled to internal service changes.

type registerResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// loginResponse flattens the token pair and the presented profile into one
// object. An explicit struct instead of a map merge: a key collision between
// token and profile fields would fail to compile rather than silently win.
type loginResponse struct {
	AccessToken    string  `json:"access_token"`
	RefreshToken   string  `json:"refresh_token"`
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	IsAdmin        bool    `json:"isAdmin"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

func toRegisterResponse(r *ports.RegisterResult) registerResponse {
	return registerResponse{
		ID:           r.ID,
		Username:     r.Username,
		Name:         r.Name,
		Email:        r.Email,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
	}
}

func toLoginResponse(r *ports.LoginResult) loginResponse {
	return loginResponse{
		AccessToken:    r.AccessToken,
		RefreshToken:   r.RefreshToken,
		ID:             r.ID,
		Username:       r.Username,
		Name:           r.Name,
		Email:          r.Email,
		IsAdmin:        r.IsAdmin,
		Bio:            r.Bio,
		ProfilePicture: r.ProfilePicture,
	}
}
