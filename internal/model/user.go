package model

import "time"

// User is the single progression record. Exactly one row is expected;
// it is created lazily with XP=0, Level=1 on first access.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	XP        int64     `json:"xp"`
	Level     int       `gorm:"default:1" json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
