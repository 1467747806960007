package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// ReplayWindow is how far a delivery timestamp may differ from the
// current time, in either direction. Anything older (or further in the
// future) is treated as a suspected replay, not clock skew.
const ReplayWindow = 5 * time.Minute

// SecurityValidator validates inbound webhook deliveries.
type SecurityValidator struct {
	config      SecurityConfig
	rateLimiter *rateLimiter
	now         func() time.Time
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	return &SecurityValidator{
		config:      config,
		rateLimiter: newRateLimiter(config.RateLimitPerMin),
		now:         time.Now,
	}
}

// ValidateSignature verifies the linear-signature header: a hex
// HMAC-SHA256 of the raw body under the shared secret.
func (v *SecurityValidator) ValidateSignature(payload []byte, signature string) error {
	if v.config.Secret == "" {
		return fmt.Errorf("webhook secret not configured")
	}
	if signature == "" {
		return fmt.Errorf("no signature provided")
	}

	// Decode hex to bytes for constant-time comparison.
	providedSig, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("invalid signature hex encoding: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(v.config.Secret))
	mac.Write(payload)
	expectedSig := mac.Sum(nil)

	if !hmac.Equal(providedSig, expectedSig) {
		return fmt.Errorf("signature verification failed")
	}
	return nil
}

// ValidTimestamp reports whether an epoch-millisecond delivery
// timestamp falls inside the replay window.
func (v *SecurityValidator) ValidTimestamp(millis int64) bool {
	ts := time.UnixMilli(millis)
	diff := v.now().Sub(ts)
	if diff < 0 {
		diff = -diff
	}
	return diff < ReplayWindow
}

// CheckRateLimit enforces per-source rate limiting.
func (v *SecurityValidator) CheckRateLimit(source string) error {
	return v.rateLimiter.Allow(source)
}

// rateLimiter keys token buckets by source with auto-expiry.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
