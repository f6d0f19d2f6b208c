package model

import "time"

// Session is a server-side login session. The cookie only carries a signed
// reference to one of these rows, so deleting the row kills the login.
type Session struct {
	ID        string `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	CreatedAt time.Time
	ExpiresAt time.Time
}
