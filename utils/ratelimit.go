package utils

import (
	"sync"
	"time"
)

const (
	// MaxLoginAttempts is the number of failed logins an address gets before
	// the lockout window applies.
	MaxLoginAttempts = 5
	// LoginLockoutWindow is how long an address stays locked out after its
	// last failure.
	LoginLockoutWindow = 15 * time.Minute

	// sweepThreshold bounds the map: once it grows past this, stale entries
	// are swept on the next recorded failure.
	sweepThreshold = 1024
)

type loginAttempt struct {
	failures    int
	lastFailure time.Time
}

// LoginLimiter tracks failed login attempts per client address. Entries whose
// lockout window has elapsed count as reset; they are removed on successful
// login and swept in bulk when the map grows large.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string]*loginAttempt
	max      int
	window   time.Duration
}

// NewLoginLimiter creates a limiter with the given threshold and window.
func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		attempts: make(map[string]*loginAttempt),
		max:      max,
		window:   window,
	}
}

// Allow reports whether addr may attempt a login right now.
func (l *LoginLimiter) Allow(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	attempt, ok := l.attempts[addr]
	if !ok {
		return true
	}
	if attempt.failures < l.max {
		return true
	}
	// Window elapsed: treated as reset on this check.
	if time.Since(attempt.lastFailure) >= l.window {
		attempt.failures = 0
		return true
	}
	return false
}

// RecordFailure notes a failed login from addr.
func (l *LoginLimiter) RecordFailure(addr string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.attempts) >= sweepThreshold {
		l.sweepLocked()
	}

	attempt, ok := l.attempts[addr]
	if !ok {
		attempt = &loginAttempt{}
		l.attempts[addr] = attempt
	}
	attempt.failures++
	attempt.lastFailure = time.Now()
}

// Reset clears all failure state for addr after a successful login.
func (l *LoginLimiter) Reset(addr string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, addr)
}

// Size returns the number of tracked addresses.
func (l *LoginLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.attempts)
}

// sweepLocked drops entries whose lockout window has elapsed. Callers must
// hold l.mu.
func (l *LoginLimiter) sweepLocked() {
	now := time.Now()
	for addr, attempt := range l.attempts {
		if now.Sub(attempt.lastFailure) >= l.window {
			delete(l.attempts, addr)
		}
	}
}
