package model

import "time"

// PostedVideo is a video that is already public. PublishedAt and
// ThumbnailURL stay null when the record needs manual follow-up.
type PostedVideo struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	VideoID *string `gorm:"uniqueIndex" json:"video_id"`
	No      int     `gorm:"default:0" json:"no"`
	Title   string  `gorm:"not null" json:"title"`
	Type    string  `gorm:"not null" json:"type"`

	PublishedAt  *time.Time `json:"published_at"`
	ThumbnailURL string     `json:"thumbnail_url"`
	URL          string     `json:"url"`

	ViewCount int64 `gorm:"default:0" json:"view_count"`
	LikeCount int64 `gorm:"default:0" json:"like_count"`

	// Only meaningful for shorts that were re-cut into long-form
	IsConvertedToVideo bool `gorm:"default:false" json:"is_converted_to_video"`
	IsPublic           bool `gorm:"default:true" json:"is_public"`

	Tags      string    `json:"tags"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
