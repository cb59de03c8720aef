package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"uberclone/internal/domain/models"
	wrap "uberclone/pkg/logger/wrapper"
)

// Auth validates the bearer token and injects the session user into the
// context. Requests without a token proceed as anonymous; protected
// endpoints reject them via RequireAuth.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		header := r.Header.Get("Authorization")
		if header == "" {
			r = r.WithContext(models.WithUser(ctx, models.AnonymousUser()))
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(header)
		if err != nil {
			errorResponse(w, http.StatusUnauthorized, err.Error())
			return
		}

		user, err := m.auth.RoleCheck(ctx, token)
		if err != nil || user == nil {
			m.log.Error(wrap.ErrorCtx(ctx, err), "failed to authenticate user", err)
			errorResponse(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		ctx = wrap.WithUserID(ctx, user.ID.String())
		next.ServeHTTP(w, r.WithContext(models.WithUser(ctx, user)))
	})
}

// RequireAuth wraps a handler and rejects anonymous requests.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := models.UserFromContext(r.Context())
		if user.IsAnonymous() {
			errorResponse(w, http.StatusUnauthorized, "authorization required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("invalid Authorization header format")
	}
	return parts[1], nil
}
