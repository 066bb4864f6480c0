package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bookstore-api/internal/domain/user"
	"bookstore-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator commands.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator commands.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"user_id": userID.String(),
			"role":    string(role),
		})
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if role != user.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not
// abort on failure. Used by catalog detail reads to scope the ebook URL.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"user_id": userID.String(),
			"role":    string(role),
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
