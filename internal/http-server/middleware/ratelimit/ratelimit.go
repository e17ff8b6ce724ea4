// Package ratelimit throttles form submissions per client address.
package ratelimit

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"pickleClub/internal/config"
	"pickleClub/internal/lib/api/response"
)

const (
	defaultBurst   = 5
	defaultIdleTTL = 10 * time.Minute
)

type visitor struct {
	limiter *rate.Limiter
	// lastSeen is a UnixNano timestamp.
	lastSeen atomic.Int64
}

// Limiter keeps one token bucket per client. Buckets idle for longer than
// cfg.IdleTTL are dropped by Sweep.
type Limiter struct {
	log      *slog.Logger
	cfg      config.RateLimit
	visitors sync.Map
	now      func() time.Time
}

func New(log *slog.Logger, cfg config.RateLimit) *Limiter {
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = defaultIdleTTL
	}

	return &Limiter{
		log: log.With(slog.String("component", "middleware/ratelimit")),
		cfg: cfg,
		now: time.Now,
	}
}

func (l *Limiter) get(key string) *rate.Limiter {
	now := l.now().UnixNano()

	if v, ok := l.visitors.Load(key); ok {
		if vis, ok := v.(*visitor); ok {
			vis.lastSeen.Store(now)
			return vis.limiter
		}
	}

	vis := &visitor{limiter: rate.NewLimiter(rate.Limit(l.cfg.RPS), l.cfg.Burst)}
	vis.lastSeen.Store(now)

	actual, loaded := l.visitors.LoadOrStore(key, vis)
	if loaded {
		if actualVis, ok := actual.(*visitor); ok {
			actualVis.lastSeen.Store(now)
			return actualVis.limiter
		}
	}
	return vis.limiter
}

// Sweep drops the buckets of clients not seen since now minus the idle TTL
// and returns how many were dropped.
func (l *Limiter) Sweep(now time.Time) int {
	cutoff := now.Add(-l.cfg.IdleTTL).UnixNano()
	removed := 0

	l.visitors.Range(func(key, value any) bool {
		vis, ok := value.(*visitor)
		if !ok || vis.lastSeen.Load() < cutoff {
			l.visitors.Delete(key)
			removed++
		}
		return true
	})

	return removed
}

// Len reports how many client buckets are held.
func (l *Limiter) Len() int {
	n := 0
	l.visitors.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Middleware allows each remote address cfg.RPS requests per second with
// bursts of cfg.Burst and answers 429 beyond that. A non-positive RPS
// disables limiting. The key is the connection's address, so RealIP must
// only run in front of it behind a trusted proxy.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	if l.cfg.RPS <= 0 {
		return next
	}

	fn := func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if !l.get(key).Allow() {
			l.log.Warn("rate limit exceeded", slog.String("client", key), slog.String("path", r.URL.Path))
			render.Status(r, http.StatusTooManyRequests)
			render.JSON(w, r, response.Error("too many requests"))
			return
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
