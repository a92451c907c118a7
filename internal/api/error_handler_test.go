package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pixelgram/social-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"password mismatch", domain.ErrPasswordMismatch, http.StatusBadRequest, "passwords do not match"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"self follow", domain.ErrSelfFollow, http.StatusUnprocessableEntity, "users cannot follow themselves"},
		{"token revoked", domain.ErrTokenRevoked, http.StatusUnauthorized, "token has been revoked"},
		{"token invalid", domain.ErrTokenInvalid, http.StatusUnauthorized, "invalid token"},
		{"token issuance", domain.ErrTokenIssuance, http.StatusBadGateway, "token issuance failed"},
		{"media unavailable", domain.ErrMediaUnavailable, http.StatusBadGateway, "media resolution failed"},
		{"wrapped", fmt.Errorf("find user: %w", domain.ErrUserNotFound), http.StatusNotFound, "user not found"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["error"] != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, resp["error"])
			}
		})
	}
}

func TestHTTPErrorHandler_EchoErrorsKeepTheirCode(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(echo.NewHTTPError(http.StatusTeapot, "short and stout"), c)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
}
