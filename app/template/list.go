package template

import (
	"net/http"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func List(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	templates := make([]model.Template, 0)

	err := d.DB.Order("created_at DESC").Find(&templates).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list templates", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, templates)
}
