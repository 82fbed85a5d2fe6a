package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	HeaderDeviceID  = "X-Device-ID"
	ContextDeviceID = "deviceID"
)

// DeviceMiddleware identifies the client installation. Every stored key is
// scoped to this id.
func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderDeviceID)
		if raw == "" {
			httperr.BadRequest(c, "missing_device_id", "Missing "+HeaderDeviceID+" header")
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_device_id", HeaderDeviceID+" must be a UUID")
			return
		}

		c.Set(ContextDeviceID, id.String())
		c.Next()
	}
}

func DeviceID(c *gin.Context) string {
	return c.GetString(ContextDeviceID)
}
