package posted

import (
	"net/http"
	"strings"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// List returns all posted videos, optionally narrowed by type and a title
// substring search.
func List(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	q := d.DB.Model(model.PostedVideo{})

	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("title LIKE ?", "%"+search+"%")
	}

	videos := make([]model.PostedVideo, 0)

	err := q.Order("no ASC, published_at ASC").Find(&videos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list posted videos", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, videos)
}
