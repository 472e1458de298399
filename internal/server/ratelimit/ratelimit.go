// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// tokenBucket allows a number of requests per window with tokens refilling
// at a steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available.
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Limiter tracks a token bucket per client IP.
type Limiter struct {
	cfg     *Config
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	lastUse map[string]time.Time
}

// NewLimiter creates a limiter from config. Disabled config yields a
// limiter that allows everything.
func NewLimiter(cfg *Config) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*tokenBucket),
		lastUse: make(map[string]time.Time),
	}
	if cfg.Enabled && cfg.CleanupInterval > 0 {
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether the request from the given client should proceed.
func (l *Limiter) Allow(r *http.Request) bool {
	if !l.cfg.Enabled {
		return true
	}
	return l.bucketFor(ClientIP(r)).allow()
}

func (l *Limiter) bucketFor(ip string) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ip]
	if !ok {
		rate := float64(l.cfg.Limit) / l.cfg.Window.Seconds()
		b = newTokenBucket(l.cfg.Burst, rate)
		l.buckets[ip] = b
	}
	l.lastUse[ip] = time.Now()
	return b
}

// cleanupLoop drops buckets idle for longer than the cleanup interval so the
// map cannot grow without bound.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cfg.CleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-l.cfg.CleanupInterval)
		l.mu.Lock()
		for ip, last := range l.lastUse {
			if last.Before(cutoff) {
				delete(l.buckets, ip)
				delete(l.lastUse, ip)
			}
		}
		l.mu.Unlock()
	}
}

// ClientIP extracts the client address, honoring X-Forwarded-For from
// proxies.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := indexByteOrLen(fwd, ','); idx > 0 {
			return fwd[:idx]
		}
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func indexByteOrLen(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return len(s)
}
