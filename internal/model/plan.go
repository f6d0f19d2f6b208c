package model

import "time"

// Video type literals as stored in the database. TypeLongForm is a regular
// long-form video, TypeShortForm is a short (≤60s when ingested from the
// provider).
const (
	TypeLongForm  = "動画"
	TypeShortForm = "ショート"
)

// VideoPlan is a planned, not-yet-public video. No is unique by convention
// only; nothing enforces it and bulk imports may produce duplicates.
type VideoPlan struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	No               int        `gorm:"not null" json:"no"`
	Type             string     `gorm:"not null" json:"type"`
	Title            string     `gorm:"not null" json:"title"`
	IntroContent     string     `json:"intro_content"`
	NarrationContent string     `json:"narration_content"`
	Tags             string     `json:"tags"`
	Category         string     `json:"category"`
	ReminderDate     *time.Time `json:"reminder_date"`
	IsPosted         bool       `gorm:"default:false" json:"is_posted"`
	PostedAt         *time.Time `json:"posted_at"`
	// A single global autosave slot lives in the most recently updated row
	// that carries a non-null draft payload
	DraftContent *string   `json:"draft_content,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
