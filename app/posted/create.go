package posted

import (
	"net/http"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"
	"channeldesk/channel-api/pkg/util"
	"channeldesk/channel-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Create(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data validators.PostedVideoInput
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if util.Val(data.Title, "") == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Title is required",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PostedVideoValidator(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	video := model.PostedVideo{
		VideoID:            data.VideoID,
		No:                 util.Val(data.No, 0),
		Title:              *data.Title,
		Type:               util.Val(data.Type, model.TypeLongForm),
		PublishedAt:        data.PublishedAt,
		ThumbnailURL:       util.Val(data.ThumbnailURL, ""),
		URL:                util.Val(data.URL, ""),
		ViewCount:          util.Val(data.ViewCount, 0),
		LikeCount:          util.Val(data.LikeCount, 0),
		IsConvertedToVideo: util.Val(data.IsConvertedToVideo, false),
		IsPublic:           util.Val(data.IsPublic, true),
		Tags:               util.Val(data.Tags, ""),
		Category:           util.Val(data.Category, ""),
	}

	if err := d.DB.Create(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create posted video", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      video.ID,
	})
}
