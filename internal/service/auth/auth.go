// internal/service/auth/auth.go
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"gameads-service/internal/domain/admin"
	xerrors "gameads-service/internal/pkg/errors"
	"gameads-service/internal/pkg/jwt"
	"gameads-service/internal/pkg/lockout"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminStore is the persistence contract for the single admin record. Email
// lookup is a case-insensitive comparison against that one record, so Get is
// the only read needed.
type AdminStore interface {
	Get(ctx context.Context) (*admin.SuperAdmin, error)
	Create(ctx context.Context, a *admin.SuperAdmin) error
	Save(ctx context.Context, a *admin.SuperAdmin) error
}

// Config holds the login security knobs.
type Config struct {
	MaxLoginAttempts int
	SessionTimeout   time.Duration // inactivity window; 0 disables the check
}

// AuthService orchestrates login, refresh, logout and credential updates
// against the admin record and the token issuer.
type AuthService struct {
	store   AdminStore
	jwt     *jwt.Manager
	policy  lockout.Policy
	timeout time.Duration
	logger  *zap.Logger
}

func NewAuthService(store AdminStore, jwtManager *jwt.Manager, cfg Config, logger *zap.Logger) *AuthService {
	return &AuthService{
		store:   store,
		jwt:     jwtManager,
		policy:  lockout.NewPolicy(cfg.MaxLoginAttempts),
		timeout: cfg.SessionTimeout,
		logger:  logger,
	}
}

// LoginDenied carries the structured metadata the client renders ("N attempts
// remaining", "locked for N seconds") without revealing which check failed.
type LoginDenied struct {
	Reason            error // xerrors.ErrInvalidCredentials or xerrors.ErrAccountLocked
	AttemptsRemaining int
	Locked            bool
	LockTimeRemaining int // seconds
}

func (e *LoginDenied) Error() string { return e.Reason.Error() }
func (e *LoginDenied) Unwrap() error { return e.Reason }

func lockState(a *admin.SuperAdmin) lockout.State {
	return lockout.State{Attempts: a.LoginAttempts, LockUntil: a.LockUntil}
}

func applyLockState(a *admin.SuperAdmin, s lockout.State) {
	a.LoginAttempts = s.Attempts
	a.LockUntil = s.LockUntil
}

// isHashed reports whether the stored credential is a recognized bcrypt hash,
// as opposed to a legacy plaintext value awaiting the one-time upgrade.
func isHashed(credential string) bool {
	_, err := bcrypt.Cost([]byte(credential))
	return err == nil
}

// checkPassword compares the submitted password against the stored
// credential. The second result reports that the credential was legacy
// plaintext and must be re-hashed.
func checkPassword(stored, submitted string) (ok, needsUpgrade bool) {
	if isHashed(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil, false
	}
	match := subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
	return match, match
}

// Login authenticates the admin. On failure it returns a *LoginDenied whose
// Reason distinguishes lockout from bad credentials; everything the response
// needs is on the struct.
func (s *AuthService) Login(ctx context.Context, email, password string) (*admin.LoginResult, error) {
	a, err := s.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin account: %w", err)
	}

	now := time.Now()
	ls := lockState(a)

	if s.policy.IsLocked(&ls, now) {
		return nil, &LoginDenied{
			Reason:            xerrors.ErrAccountLocked,
			Locked:            true,
			LockTimeRemaining: s.policy.Remaining(&ls, now),
		}
	}
	// IsLocked may have cleared an expired lock; keep the record in sync.
	applyLockState(a, ls)

	matched := strings.EqualFold(a.Email, email)
	var needsUpgrade bool
	if matched {
		matched, needsUpgrade = checkPassword(a.Password, password)
	}

	if !matched {
		s.policy.RecordFailure(&ls, now)
		applyLockState(a, ls)
		if err := s.store.Save(ctx, a); err != nil {
			return nil, fmt.Errorf("failed to persist failed attempt: %w", err)
		}

		s.logger.Warn("admin login failed",
			zap.Int("attempts", a.LoginAttempts),
			zap.Bool("locked", s.policy.IsLocked(&ls, now)),
		)

		return nil, &LoginDenied{
			Reason:            xerrors.ErrInvalidCredentials,
			AttemptsRemaining: s.policy.AttemptsRemaining(&ls),
			Locked:            s.policy.IsLocked(&ls, now),
			LockTimeRemaining: s.policy.Remaining(&ls, now),
		}
	}

	if needsUpgrade {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		a.Password = string(hashed)
		s.logger.Info("legacy plaintext credential upgraded to hash")
	}

	s.policy.Reset(&ls)
	applyLockState(a, ls)

	sessionID := jwt.NewSessionID()
	pair, err := s.jwt.Generator.IssuePair(a.ID, a.Email, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token pair: %w", err)
	}

	a.SessionID = &sessionID
	a.RefreshToken = &pair.RefreshToken
	a.Touch(now)

	if err := s.store.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info("admin logged in", zap.String("email", a.Email))

	return &admin.LoginResult{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         a.Public(),
	}, nil
}

// Refresh rotates the token pair. A submitted token that does not match the
// stored one is treated as possible theft: the whole session is invalidated
// before the caller is told anything.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*admin.TokenPair, error) {
	if refreshToken == "" {
		return nil, xerrors.ErrRefreshRequired
	}

	a, err := s.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin account: %w", err)
	}

	if a.RefreshToken == nil || subtle.ConstantTimeCompare([]byte(*a.RefreshToken), []byte(refreshToken)) != 1 {
		a.ClearSession()
		if err := s.store.Save(ctx, a); err != nil {
			return nil, fmt.Errorf("failed to invalidate session: %w", err)
		}
		s.logger.Warn("refresh token mismatch, session invalidated")
		return nil, xerrors.ErrSessionInvalidated
	}

	now := time.Now()
	if s.timeout > 0 && a.LastActivity != nil && now.Sub(*a.LastActivity) > s.timeout {
		a.ClearSession()
		if err := s.store.Save(ctx, a); err != nil {
			return nil, fmt.Errorf("failed to expire session: %w", err)
		}
		return nil, xerrors.ErrSessionExpired
	}

	claims, err := s.jwt.Verifier.Verify(refreshToken, jwt.KindRefresh)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			a.ClearSession()
			if saveErr := s.store.Save(ctx, a); saveErr != nil {
				return nil, fmt.Errorf("failed to expire session: %w", saveErr)
			}
		}
		return nil, err
	}

	if a.SessionID == nil || claims.SessionID != *a.SessionID {
		return nil, jwt.ErrTokenInvalid
	}

	// Rotation: fresh session id and a fresh pair; the old refresh token is
	// dead the moment the new one is stored.
	sessionID := jwt.NewSessionID()
	pair, err := s.jwt.Generator.IssuePair(a.ID, a.Email, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token pair: %w", err)
	}

	a.SessionID = &sessionID
	a.RefreshToken = &pair.RefreshToken
	a.Touch(now)

	if err := s.store.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to persist rotated session: %w", err)
	}

	return &admin.TokenPair{Token: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

// Logout drops the stored session. Calling it with no session active is not
// an error.
func (s *AuthService) Logout(ctx context.Context) error {
	a, err := s.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load admin account: %w", err)
	}

	a.ClearSession()
	if err := s.store.Save(ctx, a); err != nil {
		return fmt.Errorf("failed to persist logout: %w", err)
	}

	s.logger.Info("admin logged out")
	return nil
}

// ValidateAccess checks a bearer access token for the route guard and, on
// success, touches the session's activity timestamp and returns the admin
// identity.
func (s *AuthService) ValidateAccess(ctx context.Context, token string) (*admin.Info, error) {
	claims, err := s.jwt.Verifier.Verify(token, jwt.KindAccess)
	if err != nil {
		return nil, err
	}

	a, err := s.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin account: %w", err)
	}

	if claims.AdminID != a.ID {
		return nil, xerrors.ErrForbidden
	}

	if a.HasActiveSession() {
		a.Touch(time.Now())
		if err := s.store.Save(ctx, a); err != nil {
			return nil, fmt.Errorf("failed to record activity: %w", err)
		}
	}

	info := a.Public()
	return &info, nil
}

// Status reports the current lockout/session state for the dashboard.
func (s *AuthService) Status(ctx context.Context) (*admin.Status, error) {
	a, err := s.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin account: %w", err)
	}

	now := time.Now()
	ls := lockState(a)
	locked := s.policy.IsLocked(&ls, now)
	if !locked && (a.LockUntil != nil || a.LoginAttempts != ls.Attempts) {
		applyLockState(a, ls)
		if err := s.store.Save(ctx, a); err != nil {
			return nil, fmt.Errorf("failed to clear expired lock: %w", err)
		}
	}

	st := &admin.Status{
		Locked:            locked,
		AttemptsRemaining: s.policy.AttemptsRemaining(&ls),
		LockTimeRemaining: s.policy.Remaining(&ls, now),
		HasActiveSession:  a.HasActiveSession(),
	}
	if a.LastActivity != nil {
		ms := a.LastActivity.UnixMilli()
		st.LastActivity = &ms
	}
	return st, nil
}

// UpdateCredentials replaces the admin identity and password. The active
// session, if any, is left untouched; the caller keeps their tokens.
func (s *AuthService) UpdateCredentials(ctx context.Context, req *admin.UpdateCredentialsRequest) (*admin.Info, error) {
	a, err := s.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin account: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	a.Username = req.Username
	a.Email = req.Email
	a.Password = string(hashed)

	if err := s.store.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to persist credentials: %w", err)
	}

	s.logger.Info("super admin credentials updated", zap.String("email", a.Email))

	info := a.Public()
	return &info, nil
}
