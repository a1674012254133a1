package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// sanitize strips CR/LF from user-supplied values before they reach the log.
var sanitize = strings.NewReplacer("\n", "", "\r", "").Replace

// Logger logs one line per request: request id, method, path, status and duration.
// The query string is left out since share tokens and user ids may appear in it.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		//nolint:gosec // G706: method and path are sanitized to strip newlines/carriage-returns before logging.
		log.Printf(
			"[%s] %s %s %d %s",
			middleware.GetReqID(r.Context()),
			sanitize(r.Method),
			sanitize(redactToken(r.URL.Path)),
			status,
			time.Since(start),
		)
	})
}

// redactToken hides the token segment of share link paths.
func redactToken(path string) string {
	const prefix = "/api/analytics/shared/"
	if strings.HasPrefix(path, prefix) && len(path) > len(prefix) {
		return prefix + "***"
	}
	return path
}
