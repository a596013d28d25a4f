package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// requestIDHeader is echoed on every response so a local frontend can
// correlate a facade call with the engine's log entries.
const requestIDHeader = "X-Request-ID"

// withRequestID attaches a request-scoped logger carrying a request id to
// the request context. A caller-supplied id is honored; otherwise a fresh
// UUID is minted.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", id)
		})

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
