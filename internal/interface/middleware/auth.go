package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/rentwise/rentwise/internal/domain/entity"
	"github.com/rentwise/rentwise/pkg/helpers"
	"github.com/rentwise/rentwise/pkg/response"
)

const ctxCallerKey = "caller"

// Auth validates the access token and ensures an active session exists in
// Redis, then stores the caller identity (user id + role) in the Gin
// context. Handlers pass that identity into services explicitly; nothing
// downstream reads session state on its own.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.Abort()
			return
		}
		userID, err := strconv.ParseInt(claims.UserID, 10, 64)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}

		key := "user:session:" + claims.UserID
		data, err := rdb.HGetAll(c.Request.Context(), key).Result()
		if err != nil || len(data) == 0 {
			response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set(ctxCallerKey, entity.Caller{UserID: userID, Role: entity.Role(data["role"])})
		c.Next()
	}
}

// CallerFrom returns the caller identity stored by Auth.
func CallerFrom(c *gin.Context) entity.Caller {
	if v, ok := c.Get(ctxCallerKey); ok {
		if caller, ok := v.(entity.Caller); ok {
			return caller
		}
	}
	return entity.Caller{}
}
