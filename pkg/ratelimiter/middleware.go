package ratelimiter

import (
	"net/http"
	"strconv"
)

// KeyFunc extracts the rate limit key of a request, e.g. clientip.GetIP.
type KeyFunc func(r *http.Request) string

// Middleware allows each key one request per token and answers 429 with
// Retry-After once the bucket is empty. Store failures let the request
// through.
func Middleware(b *Bucket, keyFunc KeyFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := b.Allow(r.Context(), keyFunc(r))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				retry := int(res.RetryAfter().Seconds())
				w.Header().Set("Retry-After", strconv.Itoa(max(1, retry)))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
