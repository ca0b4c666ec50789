// internal/domain/admin/entity.go
package admin

import "time"

// SuperAdmin is the single administrator record. Exactly one row is expected
// to exist; it is created on first boot and mutated on every login, refresh,
// logout and failed attempt so that lockout/session state survives restarts.
type SuperAdmin struct {
	ID            int64      `json:"id" db:"id"`
	Username      string     `json:"username" db:"username"`
	Email         string     `json:"email" db:"email"`
	Password      string     `json:"-" db:"password"` // bcrypt hash, or legacy plaintext until first login upgrades it
	LoginAttempts int        `json:"-" db:"login_attempts"`
	LockUntil     *time.Time `json:"-" db:"lock_until"`
	SessionID     *string    `json:"-" db:"session_id"`
	RefreshToken  *string    `json:"-" db:"refresh_token"`
	LastActivity  *time.Time `json:"-" db:"last_activity"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// HasActiveSession reports whether a login session is currently stored.
// SessionID and RefreshToken are either both set or both nil.
func (a *SuperAdmin) HasActiveSession() bool {
	return a.SessionID != nil && a.RefreshToken != nil
}

// ClearSession nulls out all session fields. Safe to call repeatedly.
func (a *SuperAdmin) ClearSession() {
	a.SessionID = nil
	a.RefreshToken = nil
	a.LastActivity = nil
}

// Touch records activity for the inactivity-timeout check.
func (a *SuperAdmin) Touch(now time.Time) {
	a.LastActivity = &now
}
