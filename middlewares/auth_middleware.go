package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/utils"
)

const authContextKey = "authContext"

// AuthContext is the authenticated identity attached to a request. It is
// passed explicitly to everything that needs the caller's id or role; no
// handler reads raw session state.
type AuthContext struct {
	UserID uint
	Email  string
	Name   string
	Role   models.Role
}

// AuthMiddleware gates the protected tier: a valid session token is
// required, and the decoded AuthContext is attached to the request.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		if claims.UserID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid user id in token"))
			c.Abort()
			return
		}

		c.Set(authContextKey, AuthContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
			Role:   models.Role(claims.Role),
		})
		c.Next()
	}
}

// StaffOnly gates the staff tier: the session role must be STAFF or
// ADMIN. It must run after AuthMiddleware.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := CurrentUser(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}

		if !auth.Role.StaffTier() {
			utils.RespondError(c, http.StatusForbidden, utils.ErrNoPermission)
			c.Abort()
			return
		}
		c.Next()
	}
}

// WebSocketAuthMiddleware authenticates websocket upgrades, where browsers
// cannot set an Authorization header; the token rides in the query string.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			tokenString = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token missing"))
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(authContextKey, AuthContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
			Role:   models.Role(claims.Role),
		})
		c.Next()
	}
}

// CurrentUser returns the AuthContext set by the auth middleware.
func CurrentUser(c *gin.Context) (AuthContext, bool) {
	v, exists := c.Get(authContextKey)
	if !exists {
		return AuthContext{}, false
	}
	auth, ok := v.(AuthContext)
	return auth, ok
}
