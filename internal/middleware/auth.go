package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	ContextUserID = "userID"
	ContextGuest  = "guest"
)

// AuthMiddleware requires a bearer token issued for the calling device.
// It must run after DeviceMiddleware.
func AuthMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a Bearer token")
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Session expired or invalid")
			return
		}

		if claims.DeviceID != DeviceID(c) {
			httperr.Unauthorized(c, "device_mismatch", "Session belongs to another device")
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextGuest, claims.Guest)

		c.Next()
	}
}

// UserID is empty on routes without AuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
