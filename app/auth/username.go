package auth

import (
	"net/http"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"
	"channeldesk/channel-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type changeUsernameBody struct {
	NewUsername string `json:"newUsername"`
}

func ChangeUsername(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var data changeUsernameBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	username, err := validators.UsernameValidator(data.NewUsername)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var taken bool

	r := d.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("username = ? AND id != ?", username, userID).
		Find(&taken)
	if r.Error != nil && r.Error != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if username is taken", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if taken {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "This username is already taken",
			"requestID": requestID,
		})
		return
	}

	err = d.DB.Model(model.User{}).
		Where("id = ?", userID).
		Update("username", username).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update username", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"username": username,
	})
}
