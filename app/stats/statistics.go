package stats

import (
	"net/http"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type typeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type monthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type videoTotals struct {
	Total      int64   `json:"total"`
	TotalViews int64   `json:"totalViews"`
	AvgViews   float64 `json:"avgViews"`
	TotalLikes int64   `json:"totalLikes"`
	AvgLikes   float64 `json:"avgLikes"`
}

// Statistics aggregates plan and posted-video counters in one response so
// the dashboard needs a single round trip. Averages come back as 0, not
// null, when there are no videos yet.
func Statistics(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	fail := func(err error, msg string) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error(msg, zap.Error(err), zap.String("requestID", requestID))
	}

	var planTotal, planPosted int64

	if err := d.DB.Model(model.VideoPlan{}).Count(&planTotal).Error; err != nil {
		fail(err, "Failed to count video plans")
		return
	}

	if err := d.DB.Model(model.VideoPlan{}).Where("is_posted = ?", true).Count(&planPosted).Error; err != nil {
		fail(err, "Failed to count posted plans")
		return
	}

	var planTypes []typeCount

	err := d.DB.Model(model.VideoPlan{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Scan(&planTypes).
		Error
	if err != nil {
		fail(err, "Failed to count plans by type")
		return
	}

	var totals videoTotals

	err = d.DB.Model(model.PostedVideo{}).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(view_count), 0) AS total_views,
			COALESCE(AVG(view_count), 0) AS avg_views,
			COALESCE(SUM(like_count), 0) AS total_likes,
			COALESCE(AVG(like_count), 0) AS avg_likes`).
		Scan(&totals).
		Error
	if err != nil {
		fail(err, "Failed to aggregate posted videos")
		return
	}

	var videoTypes []typeCount

	err = d.DB.Model(model.PostedVideo{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Scan(&videoTypes).
		Error
	if err != nil {
		fail(err, "Failed to count videos by type")
		return
	}

	monthly := make([]monthlyCount, 0, 12)

	err = d.DB.Model(model.PostedVideo{}).
		Select(monthExpr(d.DB)+" AS month, COUNT(*) AS count").
		Where("published_at IS NOT NULL").
		Group("month").
		Order("month DESC").
		Limit(12).
		Scan(&monthly).
		Error
	if err != nil {
		fail(err, "Failed to aggregate monthly posts")
		return
	}

	topVideos := make([]model.PostedVideo, 0, 10)

	err = d.DB.Where("view_count > 0").
		Order("view_count DESC").
		Limit(10).
		Find(&topVideos).
		Error
	if err != nil {
		fail(err, "Failed to list top videos")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plans": gin.H{
			"total":     planTotal,
			"posted":    planPosted,
			"notPosted": planTotal - planPosted,
			"byType":    planTypes,
		},
		"videos": gin.H{
			"total":      totals.Total,
			"byType":     videoTypes,
			"totalViews": totals.TotalViews,
			"avgViews":   totals.AvgViews,
			"totalLikes": totals.TotalLikes,
			"avgLikes":   totals.AvgLikes,
		},
		"monthlyPosts": monthly,
		"topVideos":    topVideos,
	})
}

// monthExpr yields a YYYY-MM bucket expression for whichever database is
// behind the connection.
func monthExpr(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "to_char(published_at, 'YYYY-MM')"
	}

	return "strftime('%Y-%m', published_at)"
}
