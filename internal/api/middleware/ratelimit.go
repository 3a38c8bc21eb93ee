package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/haeum-studio/booking-service/internal/api/handlers"
)

// RateLimit caps the request rate across the whole service. The public
// booking form is the only client, so a single shared limiter is enough;
// per-IP buckets would be the next step if the service went multi-tenant.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				handlers.RespondTooManyRequests(w, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
