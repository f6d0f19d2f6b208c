package plan

import (
	"net/http"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type importRow struct {
	Type             string `json:"type"`
	Title            string `json:"title"`
	IntroContent     string `json:"intro_content"`
	NarrationContent string `json:"narration_content"`
}

type importBody struct {
	Plans []importRow `json:"plans"`
}

// ImportCSV takes rows already parsed out of a CSV on the client side and
// inserts them as unposted plans. Rows are numbered sequentially starting
// after the current highest no. Each row is inserted independently, so a
// bad row only bumps errorCount and the rest still land.
func ImportCSV(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data importBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if len(data.Plans) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No plans provided",
			"requestID": requestID,
		})
		return
	}

	no, err := nextNo(d.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to determine next plan number", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	successCount := 0
	errorCount := 0

	for _, row := range data.Plans {
		if row.Title == "" {
			errorCount++
			continue
		}

		planType := row.Type
		if planType != model.TypeLongForm && planType != model.TypeShortForm {
			planType = model.TypeLongForm
		}

		p := model.VideoPlan{
			No:               no,
			Type:             planType,
			Title:            row.Title,
			IntroContent:     row.IntroContent,
			NarrationContent: row.NarrationContent,
		}

		if err := d.DB.Create(&p).Error; err != nil {
			zap.L().Error("Failed to import plan row", zap.Error(err), zap.String("requestID", requestID))
			errorCount++
			continue
		}

		no++
		successCount++
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"successCount": successCount,
		"errorCount":   errorCount,
	})
}
