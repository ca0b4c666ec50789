// internal/pkg/lockout/lockout.go
//
// Tiered login-lockout policy. The state lives on the persisted admin record
// so it survives restarts; this package only does the arithmetic.
package lockout

import "time"

// Tier bands keyed by the failed-attempt count at the time the lock engages.
const (
	shortLock  = 30 * time.Second // attempts 1-3
	mediumLock = 2 * time.Minute  // attempts 4-6
	longLock   = 10 * time.Minute // attempts 7+
)

// DefaultMaxAttempts is the number of consecutive failures before the lock
// engages when no limit is configured.
const DefaultMaxAttempts = 3

// State is the lockout portion of the admin record.
type State struct {
	Attempts  int
	LockUntil *time.Time
}

// Policy evaluates lockout state. MaxAttempts is a configuration knob.
type Policy struct {
	MaxAttempts int
}

func NewPolicy(maxAttempts int) Policy {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return Policy{MaxAttempts: maxAttempts}
}

// LockDuration returns the lock length for a given failed-attempt count.
// Monotonically non-decreasing in attempts.
func LockDuration(attempts int) time.Duration {
	switch {
	case attempts <= 3:
		return shortLock
	case attempts <= 6:
		return mediumLock
	default:
		return longLock
	}
}

// IsLocked reports whether login is currently blocked. An expired lock is
// cleared in place, attempts included, so the caller must persist s after
// calling this.
func (p Policy) IsLocked(s *State, now time.Time) bool {
	if s.LockUntil == nil {
		return false
	}
	if s.LockUntil.After(now) {
		return true
	}
	s.LockUntil = nil
	s.Attempts = 0
	return false
}

// Remaining returns the whole seconds left on an active lock, 0 otherwise.
func (p Policy) Remaining(s *State, now time.Time) int {
	if s.LockUntil == nil || !s.LockUntil.After(now) {
		return 0
	}
	secs := int(s.LockUntil.Sub(now).Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

// RecordFailure counts a failed login and engages the lock once the
// configured maximum is reached, for the tier matching the current count.
func (p Policy) RecordFailure(s *State, now time.Time) {
	s.Attempts++
	if s.Attempts >= p.MaxAttempts {
		until := now.Add(LockDuration(s.Attempts))
		s.LockUntil = &until
	}
}

// Reset zeroes the lockout state after a successful login.
func (p Policy) Reset(s *State) {
	s.Attempts = 0
	s.LockUntil = nil
}

// AttemptsRemaining is how many more failures are tolerated before the lock
// engages, never negative.
func (p Policy) AttemptsRemaining(s *State) int {
	left := p.MaxAttempts - s.Attempts
	if left < 0 {
		return 0
	}
	return left
}
