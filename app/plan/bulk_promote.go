package plan

import (
	"net/http"
	"time"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BulkPromote marks every given plan as posted in one update, then mirrors
// each one into posted_videos with the same duplicate check as a single
// promotion. addedCount counts only genuinely new posted rows, so it can be
// lower than the number of requested IDs.
func BulkPromote(c *gin.Context, d *internal.Deps) {
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

	postedAt := time.Now().UTC()
	addedCount := 0

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(model.VideoPlan{}).
			Where("id IN ?", data.IDs).
			Updates(map[string]any{
				"is_posted":  true,
				"posted_at":  postedAt,
				"updated_at": time.Now(),
			}).
			Error
		if err != nil {
			return err
		}

		var plans []model.VideoPlan

		if err := tx.Where("id IN ?", data.IDs).Find(&plans).Error; err != nil {
			return err
		}

		for i := range plans {
			added, err := insertPostedIfMissing(tx, &plans[i], &postedAt)
			if err != nil {
				zap.L().Error("Failed to add posted video during bulk promotion", zap.Error(err), zap.String("requestID", requestID))
				continue
			}

			if added {
				addedCount++
			}
		}

		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to bulk promote video plans", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(data.IDs),
		"addedCount": addedCount,
	})
}
