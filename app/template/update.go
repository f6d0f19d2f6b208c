package template

import (
	"net/http"
	"time"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Update(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	templateID := c.Param("id")
	if templateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No template ID provided",
			"requestID": requestID,
		})
		return
	}

	var data templateBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.Name == "" || data.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Template name and type are required",
			"requestID": requestID,
		})
		return
	}

	var t model.Template

	err := d.DB.Where("id = ?", templateID).First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Template not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch template", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = d.DB.Model(model.Template{}).
		Where("id = ?", t.ID).
		Updates(map[string]any{
			"name":              data.Name,
			"type":              data.Type,
			"intro_content":     data.IntroContent,
			"narration_content": data.NarrationContent,
			"updated_at":        time.Now(),
		}).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update template", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
