package channel

import (
	"net/http"
	"time"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Fetch returns the channel settings, or a JSON null when nothing has been
// saved yet.
func Fetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var settings model.ChannelSettings

	err := d.DB.First(&settings).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, nil)
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch channel settings", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Save inserts the settings row on first use and updates it afterwards.
func Save(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data struct {
		ChannelName     string `json:"channel_name"`
		ChannelURL      string `json:"channel_url"`
		ChannelImageURL string `json:"channel_image_url"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.ChannelName == "" || data.ChannelURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Channel name and URL are required",
			"requestID": requestID,
		})
		return
	}

	var existing model.ChannelSettings

	err := d.DB.First(&existing).Error

	switch err {
	case nil:
		err = d.DB.Model(model.ChannelSettings{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"channel_name":      data.ChannelName,
				"channel_url":       data.ChannelURL,
				"channel_image_url": data.ChannelImageURL,
				"updated_at":        time.Now(),
			}).
			Error
	case gorm.ErrRecordNotFound:
		err = d.DB.Create(&model.ChannelSettings{
			ChannelName:     data.ChannelName,
			ChannelURL:      data.ChannelURL,
			ChannelImageURL: data.ChannelImageURL,
		}).Error
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to save channel settings", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
