// internal/middleware/helpers.go
package middleware

import (
	"gameads-service/internal/domain/admin"

	"github.com/gin-gonic/gin"
)

// GetAdmin returns the authenticated admin identity set by Protect.
func GetAdmin(c *gin.Context) (*admin.Info, bool) {
	v, exists := c.Get(adminContextKey)
	if !exists {
		return nil, false
	}
	info, ok := v.(*admin.Info)
	return info, ok
}

// MustGetAdmin gets the admin identity from context or panics. Only call
// behind Protect.
func MustGetAdmin(c *gin.Context) *admin.Info {
	info, ok := GetAdmin(c)
	if !ok {
		panic("admin not found in context")
	}
	return info
}
