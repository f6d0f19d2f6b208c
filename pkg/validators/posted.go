package validators

import (
	"errors"
	"strings"
	"time"
)

// PostedVideoInput is a partial posted-video record as submitted by the
// client. Nil fields were absent from the request.
type PostedVideoInput struct {
	VideoID            *string    `json:"video_id"`
	No                 *int       `json:"no"`
	Type               *string    `json:"type"`
	Title              *string    `json:"title"`
	PublishedAt        *time.Time `json:"published_at"`
	ThumbnailURL       *string    `json:"thumbnail_url"`
	URL                *string    `json:"url"`
	ViewCount          *int64     `json:"view_count"`
	LikeCount          *int64     `json:"like_count"`
	IsConvertedToVideo *bool      `json:"is_converted_to_video"`
	IsPublic           *bool      `json:"is_public"`
	Tags               *string    `json:"tags"`
	Category           *string    `json:"category"`
}

// PostedVideoValidator applies the plan bounds plus the view/like count
// ranges. All violations are joined into a single error.
func PostedVideoValidator(p *PostedVideoInput) error {
	var errs []string

	if p.No != nil && (*p.No < 0 || *p.No > maxNo) {
		errs = append(errs, "no must be a number between 0 and 999999")
	}

	if p.Type != nil && *p.Type != "" && !validType(*p.Type) {
		errs = append(errs, "type must be either 動画 or ショート")
	}

	if p.Title != nil && len([]rune(*p.Title)) > maxTitleLen {
		errs = append(errs, "title must be at most 500 characters")
	}

	if p.ViewCount != nil && (*p.ViewCount < 0 || *p.ViewCount > maxCountValue) {
		errs = append(errs, "view count must be a number between 0 and 999999999")
	}

	if p.LikeCount != nil && (*p.LikeCount < 0 || *p.LikeCount > maxCountValue) {
		errs = append(errs, "like count must be a number between 0 and 999999999")
	}

	if p.Tags != nil && len([]rune(*p.Tags)) > maxTagsLen {
		errs = append(errs, "tags must be at most 500 characters")
	}

	if p.Category != nil && len([]rune(*p.Category)) > maxCategoryLen {
		errs = append(errs, "category must be at most 100 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, ", "))
	}

	return nil
}
