package plan

import (
	"net/http"

	"channeldesk/channel-api/internal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NextNo(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	no, err := nextNo(d.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to determine next plan number", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nextNo": no,
	})
}
