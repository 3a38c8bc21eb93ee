package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/haeum-studio/booking-service/internal/api/handlers"
)

// AdminKeyHeader carries the operator credential on admin routes
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth guards the operator endpoints. Requests must present the
// configured key in the X-Admin-Key header; everything else is rejected
// before reaching a handler.
func AdminAuth(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(AdminKeyHeader)
			if presented == "" {
				handlers.RespondUnauthorized(w, "missing admin key")
				return
			}
			if subtle.ConstantTimeCompare([]byte(presented), []byte(adminKey)) != 1 {
				handlers.RespondUnauthorized(w, "invalid admin key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
