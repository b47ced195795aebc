package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// CasbinMiddleware defines the interface for Casbin authorization middleware
type CasbinMiddleware interface {
	Enforce() gin.HandlerFunc
}

// CasbinMW enforces the role policy over the authenticated API surface.
type CasbinMW struct {
	enforcer *casbin.Enforcer
}

// NewCasbinMW creates a new CasbinMW instance
func NewCasbinMW(enforcer *casbin.Enforcer) *CasbinMW {
	return &CasbinMW{enforcer: enforcer}
}

// Enforce returns the Casbin authorization middleware
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get(CtxUserRole)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User role not found in context"})
			c.Abort()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		allowed, err := mw.enforcer.Enforce("role_"+userRole.(string), path, c.Request.Method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}
