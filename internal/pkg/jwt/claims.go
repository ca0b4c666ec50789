// internal/pkg/jwt/claims.go
package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the claims. A refresh token can never pass an
// access-token check and vice versa.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Claims bind a token to the admin account and one logical login session.
type Claims struct {
	AdminID   int64  `json:"admin_id"`
	Email     string `json:"email,omitempty"` // access tokens only
	SessionID string `json:"session_id"`
	TokenKind string `json:"token_kind"`
	jwt.RegisteredClaims
}
