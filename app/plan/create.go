package plan

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

func Create(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

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

	finalNo := util.Val(data.No, 0)
	if finalNo == 0 {
		var err error

		finalNo, err = nextNo(d.DB)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to compute next no", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	plan := model.VideoPlan{
		No:               finalNo,
		Type:             util.Val(data.Type, ""),
		Title:            util.Val(data.Title, ""),
		IntroContent:     util.Val(data.IntroContent, ""),
		NarrationContent: util.Val(data.NarrationContent, ""),
		Tags:             util.Val(data.Tags, ""),
		Category:         util.Val(data.Category, ""),
		ReminderDate:     data.ReminderDate,
	}

	if err := d.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create video plan", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      plan.ID,
	})
}

// nextNo returns max(no)+1 over all plans, 1 for an empty table.
func nextNo(db *gorm.DB) (int, error) {
	var maxNo int

	err := db.Model(model.VideoPlan{}).
		Select("COALESCE(MAX(no), 0)").
		Scan(&maxNo).
		Error
	if err != nil {
		return 0, err
	}

	return maxNo + 1, nil
}
