package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const userIDKey = "user_id"

// TokenVerifier resolves a bearer token to the user it was issued to.
type TokenVerifier interface {
	ParseToken(token string) (primitive.ObjectID, error)
}

// Auth rejects requests without a valid token and stores the caller's id in the context.
// The token is read from "Authorization: Bearer <token>" or the x-auth-token header.
func Auth(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token, authorization denied"})
			return
		}

		userID, err := verifier.ParseToken(token)
		if err != nil {
			logger.Debug("rejected token", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is not valid"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// SetUserID stores an authenticated identity on the request context.
func SetUserID(c *gin.Context, id primitive.ObjectID) {
	c.Set(userIDKey, id)
}

// UserID returns the identity stored by Auth.
func UserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := value.(primitive.ObjectID)
	return id, ok
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	return strings.TrimSpace(c.GetHeader("x-auth-token"))
}
