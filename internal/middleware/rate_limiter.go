package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// windowEntry counts requests from one IP inside a fixed window.
type windowEntry struct {
	count     int
	windowEnd time.Time
}

// Limiter is a fixed-window per-IP request counter.
type Limiter struct {
	limit  int
	window time.Duration
	msg    string
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*windowEntry
}

func NewLimiter(limit int, window time.Duration, msg string) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		msg:     msg,
		now:     time.Now,
		entries: make(map[string]*windowEntry),
	}
}

// Allow records one request from ip and reports whether it is within the limit.
func (l *Limiter) Allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[ip]
	if !ok || now.After(e.windowEnd) {
		e = &windowEntry{windowEnd: now.Add(l.window)}
		l.entries[ip] = e
	}
	e.count++
	return e.count <= l.limit, e.windowEnd
}

// Purge drops expired windows and returns how many were removed.
func (l *Limiter) Purge() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	n := 0
	for ip, e := range l.entries {
		if now.After(e.windowEnd) {
			delete(l.entries, ip)
			n++
		}
	}
	return n
}

// RunPurge calls Purge every interval until ctx is done.
func (l *Limiter) RunPurge(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := l.Purge(); n > 0 {
				log.Debug().Int("purged", n).Msg("rate limiter entries purged")
			}
		}
	}
}

// Handler rejects requests over the limit with 429.
func (l *Limiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, until := l.Allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", until.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.msg))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter allows 20 login attempts per minute per IP.
func LoginRateLimiter() *Limiter {
	return NewLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.")
}

// RateLimiter is the general API limiter.
func RateLimiter(limit int, window time.Duration) *Limiter {
	return NewLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.")
}
