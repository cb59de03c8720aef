package auth

import (
	"context"
	"errors"
	"time"

	"uberclone/internal/domain/models"
	"uberclone/internal/domain/types"
	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
	"uberclone/pkg/uuid"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by both access and refresh tokens. The profile travels in
// the token because there is no user store to look it up from.
type Claims struct {
	UserID    uuid.UUID       `json:"user_id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	TokenType types.TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// Profile rebuilds the session profile from the claims.
func (c *Claims) Profile() *models.UserProfile {
	return &models.UserProfile{
		ID:    c.UserID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}

type TokenService struct {
	secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	log        logger.Logger
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration, log logger.Logger) *TokenService {
	return &TokenService{
		secret:     secret,
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
		log:        log,
	}
}

// GenerateTokens creates a new pair of access and refresh tokens for the
// given user. Nothing is persisted; the signature is the only proof.
func (s *TokenService) GenerateTokens(ctx context.Context, user *models.UserProfile) (*models.TokenPair, error) {
	ctx = wrap.WithAction(ctx, "generate_tokens")
	if user == nil {
		return nil, wrap.Error(ctx, errors.New("user is nil"))
	}

	issuedAt := time.Now().UTC()
	accessExp := issuedAt.Add(s.AccessTTL)
	refreshExp := issuedAt.Add(s.RefreshTTL)

	accessToken, err := s.signClaims(s.newClaims(user, types.AccessToken, issuedAt, accessExp))
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	refreshToken, err := s.signClaims(s.newClaims(user, types.RefreshToken, issuedAt, refreshExp))
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return &models.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// Validate parses and verifies a token string and returns its claims.
func (s *TokenService) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *TokenService) newClaims(user *models.UserProfile, tokenType types.TokenType, issuedAt, expiresAt time.Time) *Claims {
	return &Claims{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Phone:     user.Phone,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func (s *TokenService) signClaims(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
