package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/api/response"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/validation"
)

// UserIDHeader identifies the calling user. It is set by the authenticating
// proxy in front of this service.
const UserIDHeader = "X-User-ID"

type userIDKey struct{}

// RequireUser rejects requests without a valid X-User-ID header and stores the
// user id in the request context.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID == "" {
			response.RespondError(w, http.StatusUnauthorized, "user identification is required", "missing "+UserIDHeader+" header")
			return
		}
		if err := validation.ValidateUUID(userID); err != nil {
			response.RespondError(w, http.StatusUnauthorized, "invalid user identification", err.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the user id stored by RequireUser, or "".
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey{}).(string)
	return userID
}
