package middleware

import (
	"fmt"
	"net/http"
	"time"

	"channeldesk/channel-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewSessionMiddleware gates every business endpoint behind a live login
// session. The session cookie holds an HS256 token carrying a session ID;
// the signature is checked first, then the sessions table must still hold
// that row. Logout deletes the row, which kills the cookie for good.
func NewSessionMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		tokenStr, err := c.Cookie("session_token")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Not logged in",
				"requestID": requestID,
			})
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
			}

			return []byte(viper.GetString("session.secret")), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Session token invalid",
				"requestID": requestID,
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Session token invalid",
				"requestID": requestID,
			})
			return
		}

		sid, ok := claims["sid"].(string)
		if !ok || sid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Session token invalid",
				"requestID": requestID,
			})
			return
		}

		var session model.Session

		err = d.Where("id = ?", sid).First(&session).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Session expired. Please log in again",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up session", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if time.Now().After(session.ExpiresAt) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Session expired. Please log in again",
				"requestID": requestID,
			})
			return
		}

		c.Set("userID", session.UserID)
		c.Set("sessionID", session.ID)
		c.Next()
	}
}
