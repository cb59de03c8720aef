package auth

import (
	"context"
	"time"

	"uberclone/internal/domain/models"
	"uberclone/internal/domain/types"
	"uberclone/internal/simulate"
	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
	"uberclone/pkg/uuid"
)

// minPasswordLength is the only credential policy the simulated backend
// enforces. Any syntactically accepted pair succeeds; there is no registry.
const minPasswordLength = 6

// Placeholder profile fields; the email is echoed from the input.
const (
	profileName  = "John Smith"
	profilePhone = "+1 (555) 123-4567"
)

type TokenProvider interface {
	GenerateTokens(ctx context.Context, user *models.UserProfile) (*models.TokenPair, error)
	Validate(tokenStr string) (*Claims, error)
}

type AuthService struct {
	tokens  TokenProvider
	latency time.Duration
	log     logger.Logger
}

func NewAuthService(tokens TokenProvider, latency time.Duration, log logger.Logger) *AuthService {
	return &AuthService{
		tokens:  tokens,
		latency: latency,
		log:     log,
	}
}

// Login validates a credential pair and returns a profile synthesized from
// the input email, together with a fresh token pair. Fails with
// types.ErrInvalidCredentials when the email or password is empty or the
// password is shorter than six characters.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.UserProfile, *models.TokenPair, error) {
	ctx = wrap.WithAction(ctx, "login_user")

	if email == "" || password == "" || len(password) < minPasswordLength {
		return nil, nil, wrap.Error(ctx, types.ErrInvalidCredentials)
	}

	if err := simulate.Sleep(ctx, s.latency); err != nil {
		return nil, nil, wrap.Error(ctx, err)
	}

	id, err := uuid.New()
	if err != nil {
		s.log.Error(ctx, "failed to generate user id", err)
		return nil, nil, wrap.Error(ctx, ErrUnexpected)
	}

	profile := &models.UserProfile{
		ID:    id,
		Name:  profileName,
		Email: email,
		Phone: profilePhone,
	}

	tokens, err := s.tokens.GenerateTokens(ctx, profile)
	if err != nil {
		s.log.Error(ctx, "failed to generate token pair", err)
		return nil, nil, wrap.Error(ctx, ErrTokenGenerateFail)
	}

	return profile, tokens, nil
}

// RoleCheck validates an access token and rebuilds the session profile from
// its claims. Nothing is stored server-side, so the claims are the session.
func (s *AuthService) RoleCheck(ctx context.Context, token string) (*models.UserProfile, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}

	if claims.TokenType != types.AccessToken {
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}

	return claims.Profile(), nil
}

// Refresh exchanges a valid refresh token for a new pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	ctx = wrap.WithAction(ctx, "refresh_token")

	claims, err := s.tokens.Validate(refreshToken)
	if err != nil {
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}

	if claims.TokenType != types.RefreshToken {
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}

	tokens, err := s.tokens.GenerateTokens(ctx, claims.Profile())
	if err != nil {
		s.log.Error(ctx, "failed to generate token pair", err)
		return nil, wrap.Error(ctx, ErrTokenGenerateFail)
	}

	return tokens, nil
}
