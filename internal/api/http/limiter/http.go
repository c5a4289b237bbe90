package limiter

import (
	"net/http"

	"golang.org/x/time/rate"
)

// NewMiddleware creates middleware admitting requests at given maximum rate.
// maxRate - maximum number of requests per second, burst - maximum number of requests at once.
// Rejected requests are passed to onLimit.
func NewMiddleware(maxRate float64, burst int, onLimit http.HandlerFunc) func(http.Handler) http.Handler {
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(maxRate), burst)

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				onLimit(w, r)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}
