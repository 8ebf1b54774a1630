// Package clientip resolves the IP address of the client behind an HTTP
// request. The signup server uses it to key per-client rate limits.
//
//	limit := ratelimiter.Middleware(bucket, clientip.GetIP)
package clientip
