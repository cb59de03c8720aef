package middleware

import (
	"net/http"

	wrap "uberclone/pkg/logger/wrapper"
	"uberclone/pkg/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns every request an id, reusing the client-provided header
// when present, and threads it through the log context.
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			if id, err := uuid.New(); err == nil {
				requestID = id.String()
			}
		}

		if requestID != "" {
			w.Header().Set(requestIDHeader, requestID)
			r = r.WithContext(wrap.WithRequestID(r.Context(), requestID))
		}

		next.ServeHTTP(w, r)
	})
}
