package http

import (
	"net/http"
	"time"

	"github.com/privault/privault/internal/logger"
)

// withLogging writes one access-log entry per facade call once the handler
// chain has finished with it.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", lw.status).
			Int("bytes", lw.size).
			Dur("elapsed", time.Since(started)).
			Msg("request served")
	})
}
