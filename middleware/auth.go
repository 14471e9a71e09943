package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/HectorSandate/Hilosaki/models"
)

const authContextKey = "auth"

// RequireAuth validates the bearer token the session provider issued and
// stores the resulting AuthContext on the request. The token is trusted
// input: this service never manages credentials itself.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		userID, _ := claims["user_id"].(string)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		role := models.RoleCustomer
		if r, _ := claims["role"].(string); r == string(models.RoleAdmin) {
			role = models.RoleAdmin
		}

		c.Set(authContextKey, models.AuthContext{UserID: userID, Role: role})
		c.Next()
	}
}

// AuthFrom returns the AuthContext RequireAuth stored on the request.
func AuthFrom(c *gin.Context) (models.AuthContext, bool) {
	v, exists := c.Get(authContextKey)
	if !exists {
		return models.AuthContext{}, false
	}
	auth, ok := v.(models.AuthContext)
	return auth, ok
}

// RequireAdmin rejects non-admin sessions early; the services still check
// the role themselves.
func RequireAdmin(c *gin.Context) {
	auth, ok := AuthFrom(c)
	if !ok || !auth.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "administrator access required"})
		c.Abort()
		return
	}
	c.Next()
}
