package upload

import (
	"net/http"

	"channeldesk/channel-api/internal"
	"channeldesk/channel-api/internal/storage"
	"channeldesk/channel-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChannelImage accepts a multipart "image" field and stores it under the
// channel prefix.
func ChannelImage(c *gin.Context, d *internal.Deps) {
	saveImage(c, d, "channel")
}

// Thumbnail stores a posted-video thumbnail under the thumbnail prefix.
func Thumbnail(c *gin.Context, d *internal.Deps) {
	saveImage(c, d, "thumbnail")
}

func saveImage(c *gin.Context, d *internal.Deps, prefix string) {
	requestID := c.MustGet("requestID").(string)

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     validators.ErrNoImage.Error(),
			"requestID": requestID,
		})
		return
	}

	status, f, err := validators.ImageValidator(fh)
	if err != nil {
		if status == http.StatusInternalServerError {
			c.JSON(status, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to validate uploaded image", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.JSON(status, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}
	defer f.Close()

	name := storage.ObjectName(prefix, fh.Filename)

	url, err := d.Store.Save(c.Request.Context(), name, fh.Header.Get("Content-Type"), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store uploaded image", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imageUrl": url,
	})
}
