package posted

import (
	"net/http"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"
	"channeldesk/channel-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

type ingestBody struct {
	ChannelURL string `json:"channelUrl"`
}

// Ingest pulls the channel's recent uploads from YouTube and inserts the
// ones not seen before, keyed on the provider video ID. Existing rows are
// left alone so manual edits survive re-runs.
func Ingest(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	if d.YouTube == nil || d.YouTube.APIKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "YouTube API key is not configured. Set youtube.api_key in your configuration",
			"requestID": requestID,
		})
		return
	}

	if len(d.YouTube.APIKey) < 20 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "YouTube API key looks invalid. Check youtube.api_key in your configuration",
			"requestID": requestID,
		})
		return
	}

	var data ingestBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.ChannelURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No channel URL provided",
			"requestID": requestID,
		})
		return
	}

	ctx := c.Request.Context()

	channelID, err := d.YouTube.ResolveChannelID(ctx, data.ChannelURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     service.FriendlyIngestError(err),
			"requestID": requestID,
		})

		zap.L().Warn("Failed to resolve channel", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	videos, err := d.YouTube.FetchRecent(ctx, channelID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     service.FriendlyIngestError(err),
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch channel videos", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	count := 0

	for _, v := range videos {
		videoID := v.VideoID
		publishedAt := v.PublishedAt

		row := model.PostedVideo{
			VideoID:      &videoID,
			Title:        v.Title,
			Type:         v.Type,
			PublishedAt:  &publishedAt,
			ThumbnailURL: v.ThumbnailURL,
			URL:          v.URL,
			ViewCount:    v.ViewCount,
			LikeCount:    v.LikeCount,
			IsPublic:     true,
		}

		res := d.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "video_id"}},
			DoNothing: true,
		}).Create(&row)
		if res.Error != nil {
			zap.L().Error("Failed to insert fetched video", zap.Error(res.Error), zap.String("videoID", videoID), zap.String("requestID", requestID))
			continue
		}

		count += int(res.RowsAffected)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
	})
}
