package middleware

import (
	"context"

	"uberclone/internal/domain/models"
	"uberclone/pkg/logger"
)

type (
	AuthService interface {
		RoleCheck(ctx context.Context, token string) (*models.UserProfile, error)
	}

	Middleware struct {
		auth AuthService
		log  logger.Logger
	}
)

func NewMiddleware(auth AuthService, log logger.Logger) *Middleware {
	return &Middleware{
		auth: auth,
		log:  log,
	}
}
