// internal/pkg/jwt/generator.go
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

type Generator struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewGenerator(secret []byte, issuer string, accessTTL, refreshTTL time.Duration) *Generator {
	return &Generator{
		secret:     secret,
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Pair is one access/refresh token pair bound to a session identifier.
type Pair struct {
	AccessToken  string
	RefreshToken string
}

func (g *Generator) generate(adminID int64, email, sessionID, kind string, ttl time.Duration) (string, error) {
	if len(g.secret) == 0 {
		return "", fmt.Errorf("jwt generator has empty secret")
	}

	now := time.Now()
	claims := &Claims{
		AdminID:   adminID,
		Email:     email,
		SessionID: sessionID,
		TokenKind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   fmt.Sprintf("%d", adminID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        ulid.Make().String(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

// IssuePair mints an access/refresh pair bound to sessionID. The refresh
// token deliberately omits the email claim; it exists only to mint new pairs.
func (g *Generator) IssuePair(adminID int64, email, sessionID string) (*Pair, error) {
	access, err := g.generate(adminID, email, sessionID, KindAccess, g.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := g.generate(adminID, "", sessionID, KindRefresh, g.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

// NewSessionID returns an opaque identifier for one login session, rotated on
// every refresh.
func NewSessionID() string {
	return ulid.Make().String()
}
