package handler

import (
	"context"
	"net/http"

	"uberclone/internal/adapter/http/handler/dto"
	"uberclone/internal/domain/models"
	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
	"uberclone/pkg/validator"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.UserProfile, *models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	RoleCheck(ctx context.Context, token string) (*models.UserProfile, error)
}

type Auth struct {
	auth  AuthService
	trips TripService
	l     logger.Logger
}

func NewAuth(service AuthService, trips TripService, l logger.Logger) *Auth {
	return &Auth{
		auth:  service,
		trips: trips,
		l:     l,
	}
}

// Login godoc
// @Summary      Login
// @Description  Validates a credential pair and starts a trip session. Any email with a password of six or more characters is accepted.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /auth/login [post]
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "login_user")

	req := &dto.LoginRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateLogin(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	profile, tokens, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to login user", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	// Login restarts the booking workflow.
	trip := h.trips.Begin(ctx, profile)

	response := envelope{
		"user":          profile,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"trip":          trip,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Refresh godoc
// @Summary      Refresh tokens
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshTokenRequest true "Refresh token"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /auth/refresh [post]
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "refresh_token")

	req := &dto.RefreshTokenRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateRefreshToken(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	tokens, err := h.auth.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to refresh token pair", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Logout godoc
// @Summary      Logout
// @Description  Ends the trip session. Tokens are stateless and simply expire.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /auth/logout [post]
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "logout_user")

	user := models.UserFromContext(ctx)
	h.trips.End(ctx, user.ID)

	response := envelope{"message": "logged out"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Profile godoc
// @Summary      Current user profile
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /auth/me [get]
func (h *Auth) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_profile")

	user := models.UserFromContext(ctx)
	if user.IsAnonymous() {
		h.l.Warn(ctx, "failed to get profile")
		errorResponse(w, http.StatusNotFound, "failed to get profile")
		return
	}

	response := envelope{
		"user": user,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(ctx, "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}
