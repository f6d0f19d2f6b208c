package model

import "time"

// Template is a reusable intro/narration skeleton used to prefill new plans.
type Template struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Type             string    `gorm:"not null" json:"type"`
	IntroContent     string    `json:"intro_content"`
	NarrationContent string    `json:"narration_content"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
