package middleware

import (
	"fmt"
	"net/http"
)

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				m.log.Error(r.Context(), "recovered from panic", fmt.Errorf("%v", p))
				w.Header().Set("Connection", "close")
				errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("%v", p))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
