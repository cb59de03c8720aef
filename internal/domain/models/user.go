package models

import (
	"context"
	"time"

	"uberclone/pkg/uuid"
)

// UserProfile is produced on successful authentication. Lifetime is the
// session; nothing is persisted.
type UserProfile struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// TokenPair is the JWT pair issued at login.
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// AnonymousUser represents an unauthenticated request.
func AnonymousUser() *UserProfile {
	return &UserProfile{}
}

// IsAnonymous reports whether the profile belongs to an unauthenticated request.
func (u *UserProfile) IsAnonymous() bool {
	return u == nil || u.ID.IsZero()
}

type userCtxKeyStruct struct{}

var userCtxKey = &userCtxKeyStruct{}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user *UserProfile) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// UserFromContext returns the authenticated user, or nil.
func UserFromContext(ctx context.Context) *UserProfile {
	if user, ok := ctx.Value(userCtxKey).(*UserProfile); ok {
		return user
	}
	return nil
}
