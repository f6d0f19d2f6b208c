// Package storage persists uploaded images either on local disk or in S3
package storage

import (
	"context"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const nameCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// Store writes uploaded images and hands back the public URL they will be
// served from.
type Store interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (url string, err error)
}

// ObjectName builds a collision-safe name of the form
// {prefix}-{timestamp}-{random}{ext}. The original file name only
// contributes its extension; the rest is dropped to rule out path traversal.
func ObjectName(prefix, originalName string) string {
	ext := strings.ToLower(path.Ext(path.Base(originalName)))

	random, err := gonanoid.Generate(nameCharset, 9)
	if err != nil {
		// Generate only fails on a broken charset or size
		random = strconv.FormatInt(time.Now().UnixNano(), 36)
	}

	return prefix + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + random + ext
}
