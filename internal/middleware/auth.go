package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sentret/internal/dto"
	"github.com/lshigami/Sentret/internal/model"
	"github.com/lshigami/Sentret/internal/service"
	"github.com/rs/zerolog/log"
)

const userContextKey = "currentUser"

// RequireAuth rejects requests without a valid Bearer token and stores the
// resolved user in the gin context.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, authService)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present and lets the
// request through either way. Routes served to both anonymous and signed-in
// players use this.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c, authService); ok {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *model.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func resolveUser(c *gin.Context, authService service.AuthService) (*model.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return nil, false
	}

	claims, err := authService.ParseToken(tokenString)
	if err != nil {
		return nil, false
	}

	user, err := authService.GetUser(claims.UserID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", claims.UserID).Msg("Token valid but user lookup failed")
		return nil, false
	}
	return user, true
}
