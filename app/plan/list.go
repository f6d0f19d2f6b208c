// Package plan implements the video plan endpoints
package plan

import (
	"net/http"
	"strings"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func List(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	tx := d.DB.Model(model.VideoPlan{})

	if posted := c.Query("posted"); posted != "" {
		tx = tx.Where("is_posted = ?", posted == "true")
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		term := "%" + search + "%"
		tx = tx.Where("(title LIKE ? OR intro_content LIKE ? OR narration_content LIKE ?)", term, term, term)
	}

	plans := make([]model.VideoPlan, 0)

	err := tx.Order("no ASC, created_at DESC").Find(&plans).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list video plans", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, plans)
}
