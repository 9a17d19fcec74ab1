// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/utils"
	"github.com/MKhiriev/access-gate/models"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an address keeps its limiter without requests.
const limiterIdleTTL = 10 * time.Minute

type addressLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// loginRateLimiter keeps one token bucket per client address. Idle buckets
// are pruned lazily, at most once per limiterIdleTTL.
type loginRateLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu        sync.Mutex
	limiters  map[string]*addressLimiter
	lastPrune time.Time
}

// newLoginRateLimiter returns nil when perMinute is negative, which disables
// limiting.
func newLoginRateLimiter(perMinute, burst int, now func() time.Time) *loginRateLimiter {
	if perMinute < 0 {
		return nil
	}

	return &loginRateLimiter{
		limit:     rate.Limit(float64(perMinute) / 60.0),
		burst:     burst,
		now:       now,
		limiters:  make(map[string]*addressLimiter),
		lastPrune: now(),
	}
}

func (l *loginRateLimiter) allow(address string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPrune) > limiterIdleTTL {
		for key, entry := range l.limiters {
			if now.Sub(entry.lastAccess) > limiterIdleTTL {
				delete(l.limiters, key)
			}
		}
		l.lastPrune = now
	}

	entry, ok := l.limiters[address]
	if !ok {
		entry = &addressLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[address] = entry
	}
	entry.lastAccess = now

	return entry.limiter.AllowN(now, 1)
}

// retryAfter is the number of seconds until one token is refilled.
func (l *loginRateLimiter) retryAfter() int {
	if l.limit <= 0 {
		return int(limiterIdleTTL.Seconds())
	}
	return max(1, int(math.Ceil(1.0/float64(l.limit))))
}

func (l *loginRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// withLoginRateLimit rejects login bursts from one address with 429.
// Rejected requests never reach the gate and are not audited.
func (h *Handler) withLoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		address, _ := utils.GetClientAddressFromContext(r.Context())
		if !h.limiter.allow(address) {
			logger.FromRequest(r).Warn().Str("ip", address).Msg("login rate limit exceeded")
			h.metrics.RecordRateLimited()

			w.Header().Set("Retry-After", strconv.Itoa(h.limiter.retryAfter()))
			utils.WriteJSON(w, models.ErrorResponse{Error: msgTooManyRequests}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
