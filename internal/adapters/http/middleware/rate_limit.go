package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/formflow/internal/adapters/http/dto"
	"github.com/jsamuelsen11/formflow/internal/domain"
)

// RateLimit returns middleware that admits at most rps requests per second
// with bursts of up to burst requests, shared by every caller of the wrapped
// handler. Rejected requests get an RFC 9457 429 response with a Retry-After
// header. A non-positive rps disables limiting.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	retryAfter := strconv.Itoa(int(math.Ceil(1 / rps)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				dto.WriteErrorResponse(w, r, fmt.Errorf("%s %s: %w", r.Method, r.URL.Path, domain.ErrRateLimited))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
