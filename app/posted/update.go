package posted

import (
	"net/http"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"
	"channeldesk/channel-api/pkg/util"
	"channeldesk/channel-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Update(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	videoID := c.Param("id")
	if videoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No video ID provided",
			"requestID": requestID,
		})
		return
	}

	var data validators.PostedVideoInput
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
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

	var video model.PostedVideo

	err := d.DB.Where("id = ?", videoID).First(&video).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Posted video not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch posted video", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	publishedAt := data.PublishedAt
	if publishedAt == nil {
		publishedAt = video.PublishedAt
	}

	err = d.DB.Model(model.PostedVideo{}).
		Where("id = ?", video.ID).
		Updates(map[string]any{
			"no":                    util.Val(data.No, video.No),
			"title":                 util.Val(data.Title, video.Title),
			"type":                  util.Val(data.Type, video.Type),
			"published_at":          publishedAt,
			"thumbnail_url":         util.Val(data.ThumbnailURL, video.ThumbnailURL),
			"url":                   util.Val(data.URL, video.URL),
			"view_count":            util.Val(data.ViewCount, video.ViewCount),
			"like_count":            util.Val(data.LikeCount, video.LikeCount),
			"is_converted_to_video": util.Val(data.IsConvertedToVideo, video.IsConvertedToVideo),
			"is_public":             util.Val(data.IsPublic, video.IsPublic),
			"tags":                  util.Val(data.Tags, video.Tags),
			"category":              util.Val(data.Category, video.Category),
		}).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update posted video", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
