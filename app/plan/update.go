package plan

import (
	"net/http"
	"time"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"
	"channeldesk/channel-api/pkg/util"
	"channeldesk/channel-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Update edits a plan and, when the posted flag flips from false to true,
// mirrors the plan into posted_videos. The mirror insert is best-effort:
// a failure there is logged and the plan update still goes through.
func Update(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	planID := c.Param("id")
	if planID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No plan ID provided",
			"requestID": requestID,
		})
		return
	}

	var data validators.PlanInput
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PlanValidator(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var plan model.VideoPlan

	err := d.DB.Where("id = ?", planID).First(&plan).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Video plan not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch video plan", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	isPosted := util.Val(data.IsPosted, false)

	var postedAt *time.Time
	if isPosted {
		now := time.Now().UTC()
		postedAt = &now
	}

	updated := model.VideoPlan{
		ID:               plan.ID,
		No:               util.Val(data.No, plan.No),
		Type:             util.Val(data.Type, plan.Type),
		Title:            util.Val(data.Title, plan.Title),
		IntroContent:     util.Val(data.IntroContent, plan.IntroContent),
		NarrationContent: util.Val(data.NarrationContent, plan.NarrationContent),
		Tags:             util.Val(data.Tags, plan.Tags),
		Category:         util.Val(data.Category, plan.Category),
		ReminderDate:     data.ReminderDate,
	}
	if updated.ReminderDate == nil {
		updated.ReminderDate = plan.ReminderDate
	}

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		if isPosted && !plan.IsPosted {
			if _, err := insertPostedIfMissing(tx, &updated, postedAt); err != nil {
				// Best-effort: the plan update must not be blocked by this
				zap.L().Error("Failed to add posted video during promotion", zap.Error(err), zap.String("requestID", requestID))
			}
		}

		return tx.Model(model.VideoPlan{}).
			Where("id = ?", plan.ID).
			Updates(map[string]any{
				"no":                updated.No,
				"type":              updated.Type,
				"title":             updated.Title,
				"intro_content":     updated.IntroContent,
				"narration_content": updated.NarrationContent,
				"tags":              updated.Tags,
				"category":          updated.Category,
				"reminder_date":     updated.ReminderDate,
				"is_posted":         isPosted,
				"posted_at":         postedAt,
				"updated_at":        time.Now(),
			}).
			Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update video plan", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
