package plan

import (
	"net/http"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type bulkBody struct {
	IDs []uint `json:"ids"`
}

func BulkDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data bulkBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if len(data.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No IDs provided",
			"requestID": requestID,
		})
		return
	}

	err := d.DB.Where("id IN ?", data.IDs).Delete(model.VideoPlan{}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to bulk delete video plans", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(data.IDs),
	})
}
