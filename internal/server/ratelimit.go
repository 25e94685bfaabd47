package server

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const (
	loginMaxFailures  = 10
	loginLockout      = time.Minute
	loginRecordExpiry = time.Hour
)

// loginLimiter locks out a source IP after repeated failed logins. State is
// in-memory only; a restart forgives everyone.
type loginLimiter struct {
	mu       sync.Mutex
	attempts map[string]*loginRecord
	now      func() time.Time
}

type loginRecord struct {
	failures    int
	lastFailure time.Time
	lockedUntil time.Time
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{
		attempts: make(map[string]*loginRecord),
		now:      time.Now,
	}
}

// check reports whether the IP is currently locked out and for how long.
func (l *loginLimiter) check(ip string) (blocked bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.attempts[ip]
	if !ok {
		return false, 0
	}
	now := l.now()
	if now.Sub(rec.lastFailure) > loginRecordExpiry {
		delete(l.attempts, ip)
		return false, 0
	}
	if now.Before(rec.lockedUntil) {
		return true, rec.lockedUntil.Sub(now)
	}
	return false, 0
}

func (l *loginLimiter) recordFailure(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.attempts[ip]
	if !ok {
		rec = &loginRecord{}
		l.attempts[ip] = rec
	}
	rec.failures++
	rec.lastFailure = l.now()
	if rec.failures >= loginMaxFailures {
		rec.lockedUntil = l.now().Add(loginLockout)
	}
}

func (l *loginLimiter) recordSuccess(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, ip)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeRateLimited(w http.ResponseWriter, retryAfter time.Duration) {
	secs := int(retryAfter.Seconds())
	if secs < 1 {
		secs = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(secs))
	writeError(w, http.StatusTooManyRequests, "too many failed login attempts; try again later")
}
