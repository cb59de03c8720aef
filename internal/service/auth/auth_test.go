package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"uberclone/internal/domain/types"
	"uberclone/pkg/logger"
)

func newTestAuthService() *AuthService {
	log := logger.InitLogger("test", logger.LevelError)
	tokens := NewTokenService("test-secret", 15*time.Minute, 24*time.Hour, log)
	return NewAuthService(tokens, 0, log)
}

func TestLogin_CredentialPolicy(t *testing.T) {
	svc := newTestAuthService()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid demo credentials",
			email:    "demo@uber.com",
			password: "demo123",
		},
		{
			name:     "valid minimum length password",
			email:    "rider@example.com",
			password: "123456",
		},
		{
			name:     "empty email",
			email:    "",
			password: "demo123",
			wantErr:  types.ErrInvalidCredentials,
		},
		{
			name:     "empty password",
			email:    "demo@uber.com",
			password: "",
			wantErr:  types.ErrInvalidCredentials,
		},
		{
			name:     "password below six characters",
			email:    "demo@uber.com",
			password: "12345",
			wantErr:  types.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, tokens, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Login() unexpected error: %v", err)
			}
			if profile.Email != tt.email {
				t.Errorf("profile email = %q, want %q", profile.Email, tt.email)
			}
			if profile.ID.IsZero() {
				t.Error("profile id must be generated")
			}
			if tokens.AccessToken == "" || tokens.RefreshToken == "" {
				t.Error("token pair must be issued on successful login")
			}
		})
	}
}

func TestLogin_CancelledContext(t *testing.T) {
	log := logger.InitLogger("test", logger.LevelError)
	tokens := NewTokenService("test-secret", 15*time.Minute, 24*time.Hour, log)
	svc := NewAuthService(tokens, 50*time.Millisecond, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.Login(ctx, "demo@uber.com", "demo123")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Login() with cancelled context: error = %v, want context.Canceled", err)
	}
}

func TestRoleCheck_RebuildsProfileFromToken(t *testing.T) {
	svc := newTestAuthService()

	profile, tokens, err := svc.Login(context.Background(), "demo@uber.com", "demo123")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	got, err := svc.RoleCheck(context.Background(), tokens.AccessToken)
	if err != nil {
		t.Fatalf("RoleCheck() unexpected error: %v", err)
	}
	if got.ID != profile.ID {
		t.Errorf("rebuilt profile id = %s, want %s", got.ID, profile.ID)
	}
	if got.Email != profile.Email {
		t.Errorf("rebuilt profile email = %q, want %q", got.Email, profile.Email)
	}
}

func TestRoleCheck_RejectsRefreshToken(t *testing.T) {
	svc := newTestAuthService()

	_, tokens, err := svc.Login(context.Background(), "demo@uber.com", "demo123")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	if _, err := svc.RoleCheck(context.Background(), tokens.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("RoleCheck(refresh token) error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestRefresh(t *testing.T) {
	svc := newTestAuthService()

	_, tokens, err := svc.Login(context.Background(), "demo@uber.com", "demo123")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	fresh, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh() unexpected error: %v", err)
	}
	if fresh.AccessToken == "" || fresh.RefreshToken == "" {
		t.Error("Refresh() must issue a full pair")
	}

	// An access token must not be usable as a refresh token.
	if _, err := svc.Refresh(context.Background(), tokens.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Refresh(access token) error = %v, want %v", err, ErrInvalidToken)
	}
}
