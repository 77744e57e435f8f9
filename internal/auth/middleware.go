package auth

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserIDHeader carries the acting user's id. The value is trusted as-is:
// nothing here verifies it, so the service must sit behind a gateway that does.
const UserIDHeader = "X-Sharer-User-Id"

// ActorRequired is a Gin middleware that reads the acting user id from UserIDHeader.
func ActorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(UserIDHeader)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "missing " + UserIDHeader + " header",
			})
			return
		}

		userID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || userID < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid " + UserIDHeader + " header",
			})
			return
		}

		// Store user info into Gin context for later handlers.
		c.Set(userIDKey, userID)

		ctx := c.Request.Context()
		logger := zerolog.Ctx(ctx).With().Int64("actor_id", userID).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(ctx))

		c.Next()
	}
}
