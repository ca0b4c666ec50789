// internal/service/auth/seed.go
package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"gameads-service/internal/domain/admin"
	xerrors "gameads-service/internal/pkg/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EnsureSuperAdminExists creates the admin record on first boot. When no
// password is configured a random one is generated and logged exactly once;
// only its hash is ever stored.
func (s *AuthService) EnsureSuperAdminExists(ctx context.Context, username, email, password string) error {
	_, err := s.store.Get(ctx)
	if err == nil {
		s.logger.Info("super admin already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, xerrors.ErrNotFound) {
		return fmt.Errorf("failed to check super admin existence: %w", err)
	}

	if username == "" || email == "" {
		return fmt.Errorf("super admin username and email must be configured")
	}

	generated := password == ""
	if generated {
		password = generatePassword()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	a := &admin.SuperAdmin{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.store.Create(ctx, a); err != nil {
		return fmt.Errorf("failed to create super admin: %w", err)
	}

	if generated {
		// The only time the plaintext is ever visible. It is not persisted
		// and never logged again.
		s.logger.Warn("no admin password configured, generated one",
			zap.String("email", email),
			zap.String("password", password),
		)
	} else {
		s.logger.Info("super admin created", zap.String("email", email))
	}

	return nil
}

func generatePassword() string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%"
	const length = 16

	b := make([]byte, length)
	rand.Read(b)

	password := make([]byte, length)
	for i := range password {
		password[i] = charset[int(b[i])%len(charset)]
	}

	return string(password)
}
