package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard/internal/models"
)

const userContextKey = "currentUser"

// RequireAuth parses the Bearer token, loads the matching account and stores
// it in the request context. Requests without a valid token never reach the
// workflows.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		userID, err := ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(userContextKey, &user)
		c.Next()
	}
}

// CurrentUser returns the account RequireAuth resolved for this request.
// Handlers pass it on to the workflows explicitly; services never read
// request state themselves.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userContextKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// SetCurrentUser injects a principal directly; used by tests to drive
// handlers without minting tokens.
func SetCurrentUser(c *gin.Context, u *models.User) {
	c.Set(userContextKey, u)
}
