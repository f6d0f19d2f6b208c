package template

import (
	"net/http"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type templateBody struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	IntroContent     string `json:"intro_content"`
	NarrationContent string `json:"narration_content"`
}

func Create(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

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

	t := model.Template{
		Name:             data.Name,
		Type:             data.Type,
		IntroContent:     data.IntroContent,
		NarrationContent: data.NarrationContent,
	}

	if err := d.DB.Create(&t).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create template", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      t.ID,
	})
}
