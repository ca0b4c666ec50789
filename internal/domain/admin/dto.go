// internal/domain/admin/dto.go
package admin

// LoginRequest carries admin login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token submitted for rotation.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdateCredentialsRequest replaces the admin identity and password.
type UpdateCredentialsRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Info is the public view of the admin identity returned to the dashboard.
type Info struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResult is what the session manager hands back on successful login.
type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         Info   `json:"user"`
}

// TokenPair is the result of a refresh rotation.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// Status describes the current lockout/session state for the dashboard.
type Status struct {
	Locked            bool   `json:"locked"`
	AttemptsRemaining int    `json:"attemptsRemaining"`
	LockTimeRemaining int    `json:"lockTimeRemaining"`
	HasActiveSession  bool   `json:"hasActiveSession"`
	LastActivity      *int64 `json:"lastActivity"` // unix ms, null when no session
}

// Public returns the Info view for the stored account. The role is fixed:
// there is exactly one admin and no role hierarchy.
func (a *SuperAdmin) Public() Info {
	return Info{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     "super-admin",
	}
}
