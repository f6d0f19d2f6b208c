package model

import "time"

// ChannelSettings is a singleton by convention: writes either insert the
// first row or update the existing one, never add a second.
type ChannelSettings struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ChannelName     string    `gorm:"not null" json:"channel_name"`
	ChannelURL      string    `gorm:"not null" json:"channel_url"`
	ChannelImageURL string    `json:"channel_image_url"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (ChannelSettings) TableName() string {
	return "channel_settings"
}
