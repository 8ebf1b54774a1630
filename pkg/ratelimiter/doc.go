// Package ratelimiter throttles signup submissions per client with a token
// bucket.
//
// Config is loaded from RATE_LIMIT_* variables. MemoryStore keeps buckets
// in process; Middleware answers 429 with Retry-After and X-RateLimit-*
// headers once a client's bucket is empty.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, cfg)
//	r.Use(ratelimiter.Middleware(bucket, clientip.GetIP))
package ratelimiter
