// internal/pkg/jwt/manager.go
package jwt

import (
	"fmt"
	"time"
)

// Config for the token issuer. A single symmetric secret signs both token
// kinds; there is no key rotation.
type Config struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Manager struct {
	Generator *Generator
	Verifier  *Verifier
}

func NewManager(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret must be configured")
	}

	secret := []byte(cfg.Secret)
	return &Manager{
		Generator: NewGenerator(secret, cfg.Issuer, cfg.AccessTTL, cfg.RefreshTTL),
		Verifier:  NewVerifier(secret, cfg.Issuer),
	}, nil
}
