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

// The scratch draft lives inside whichever plan row most recently had its
// draft_content set. When no plan holds a draft yet, saving creates a
// placeholder row that only exists to carry the draft text.
const draftPlaceholderTitle = "下書き"

func DraftFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var plan model.VideoPlan

	err := d.DB.Where("draft_content IS NOT NULL").
		Order("updated_at DESC").
		First(&plan).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{
				"draft_content": nil,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch draft", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft_content": plan.DraftContent,
	})
}

func DraftSave(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data struct {
		DraftContent string `json:"draft_content"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	var plan model.VideoPlan

	err := d.DB.Where("draft_content IS NOT NULL").
		Order("updated_at DESC").
		First(&plan).
		Error

	switch err {
	case nil:
		err = d.DB.Model(model.VideoPlan{}).
			Where("id = ?", plan.ID).
			Updates(map[string]any{
				"draft_content": data.DraftContent,
				"updated_at":    time.Now(),
			}).
			Error
	case gorm.ErrRecordNotFound:
		placeholder := model.VideoPlan{
			No:           0,
			Type:         model.TypeLongForm,
			Title:        draftPlaceholderTitle,
			DraftContent: &data.DraftContent,
		}
		err = d.DB.Create(&placeholder).Error
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to save draft", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
