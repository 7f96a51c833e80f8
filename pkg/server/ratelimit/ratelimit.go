// Package ratelimit throttles callers with one token bucket each.
package ratelimit

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"droscher.com/BrewWolf/configs"
)

var ErrRateLimited = errors.New("rate limit exceeded")

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type Limiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
	logger    *zap.Logger
}

func NewLimiter(conf configs.Server, logger *zap.Logger) *Limiter {
	return &Limiter{
		buckets:   make(map[string]*bucket),
		limit:     rate.Limit(conf.RateLimit),
		burst:     conf.RateBurst,
		idle:      conf.RateIdle,
		lastSweep: time.Now(),
		now:       time.Now,
		logger:    logger,
	}
}

func (l *Limiter) Allow(caller string) bool {
	l.mu.Lock()
	now := l.now()
	l.sweep(now)

	entry, found := l.buckets[caller]
	if !found {
		entry = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[caller] = entry
	}

	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// sweep drops callers idle for at least the idle window, at most once per
// window. Callers must hold mu.
func (l *Limiter) sweep(now time.Time) {
	if l.idle <= 0 || now.Sub(l.lastSweep) < l.idle {
		return
	}

	for caller, entry := range l.buckets {
		if now.Sub(entry.lastSeen) >= l.idle {
			delete(l.buckets, caller)
		}
	}

	l.lastSweep = now
}

// Interceptor keys callers by peer host, never by request headers.
func (l *Limiter) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if !l.Allow(peerHost(req.Peer().Addr)) {
				l.logger.Warn("rate limited", zap.String("procedure", req.Spec().Procedure), zap.String("peer", req.Peer().Addr))

				return nil, connect.NewError(connect.CodeResourceExhausted, ErrRateLimited)
			}

			return next(ctx, req)
		}
	}
}

func peerHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}
