package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"uberclone/internal/domain/models"
	"uberclone/internal/domain/types"
	"uberclone/internal/service/auth"
	"uberclone/internal/service/booking"
	"uberclone/internal/service/catalog"
	"uberclone/internal/service/location"
	"uberclone/internal/service/pricing"
	"uberclone/internal/service/trip"
	"uberclone/pkg/logger"
)

func newTestAuthHandler() *Auth {
	log := logger.InitLogger("test", logger.LevelError)

	tokens := auth.NewTokenService("test-secret", 15*time.Minute, 24*time.Hour, log)
	authSvc := auth.NewAuthService(tokens, 0, log)

	tripSvc := trip.NewTripService(
		location.NewLocationService(0, log),
		catalog.NewCatalogService(0, log),
		pricing.NewEstimator(0, log),
		booking.NewBookingService(0, log),
		log,
	)

	return NewAuth(authSvc, tripSvc, log)
}

func TestLogoutHandler_EndsTripSession(t *testing.T) {
	log := logger.InitLogger("test", logger.LevelError)

	tokens := auth.NewTokenService("test-secret", 15*time.Minute, 24*time.Hour, log)
	authSvc := auth.NewAuthService(tokens, 0, log)
	tripSvc := trip.NewTripService(
		location.NewLocationService(0, log),
		catalog.NewCatalogService(0, log),
		pricing.NewEstimator(0, log),
		booking.NewBookingService(0, log),
		log,
	)
	h := NewAuth(authSvc, tripSvc, log)

	ctx := context.Background()
	profile, _, err := authSvc.Login(ctx, "demo@uber.com", "demo123")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	tripSvc.Begin(ctx, profile)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req = req.WithContext(models.WithUser(req.Context(), profile))
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if _, err := tripSvc.Snapshot(ctx, profile.ID); !errors.Is(err, types.ErrSessionNotFound) {
		t.Fatalf("Snapshot() after logout: error = %v, want %v", err, types.ErrSessionNotFound)
	}
}

func TestLoginHandler(t *testing.T) {
	h := newTestAuthHandler()

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "valid credentials",
			body:     `{"email": "demo@uber.com", "password": "demo123"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "short password rejected as unauthorized",
			body:     `{"email": "demo@uber.com", "password": "12345"}`,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "missing email fails validation",
			body:     `{"password": "demo123"}`,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "malformed body",
			body:     `{"email": `,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown field",
			body:     `{"email": "demo@uber.com", "password": "demo123", "remember": true}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Login(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}

func TestLoginHandler_ResponseBody(t *testing.T) {
	h := newTestAuthHandler()

	body := `{"email": "demo@uber.com", "password": "demo123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var response struct {
		User struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		Trip         struct {
			State string `json:"state"`
		} `json:"trip"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("cannot decode response: %v", err)
	}

	if response.User.Email != "demo@uber.com" {
		t.Errorf("user email = %q, want %q", response.User.Email, "demo@uber.com")
	}
	if response.AccessToken == "" || response.RefreshToken == "" {
		t.Error("token pair must be present in the response")
	}
	if response.Trip.State != "AUTHENTICATED" {
		t.Errorf("trip state = %q, want %q", response.Trip.State, "AUTHENTICATED")
	}
}

func TestRefreshHandler(t *testing.T) {
	h := newTestAuthHandler()

	// Obtain a real pair first.
	loginReq := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email": "demo@uber.com", "password": "demo123"}`))
	loginRec := httptest.NewRecorder()
	h.Login(loginRec, loginReq)
	if loginRec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want %d", loginRec.Code, http.StatusOK)
	}

	var loginResp struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(loginRec.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("cannot decode login response: %v", err)
	}

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "valid refresh token",
			body:     `{"refresh_token": "` + loginResp.RefreshToken + `"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "garbage token",
			body:     `{"refresh_token": "not-a-jwt"}`,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "missing token fails validation",
			body:     `{}`,
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Refresh(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}
