package auth

import (
	"net/http"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Logout(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	sessionID := c.MustGet("sessionID").(string)

	if err := d.DB.Where("id = ?", sessionID).Delete(model.Session{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete session", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.SetCookie("session_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
