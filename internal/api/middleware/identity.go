package middleware

import (
	"context"
	"net/http"

	"github.com/slidegen/slidegen-api/internal/api/shared"
	"github.com/slidegen/slidegen-api/internal/domain"
)

// PlaceholderIdentity injects the placeholder user ID into the request
// context. It stands in for a real authentication middleware until account
// handling lands; handlers read the user ID the same way either way.
func PlaceholderIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, domain.PlaceholderUserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
