package model

import "time"

// XPHistory accumulates XP earned per ISO week, keyed by that week's Monday.
type XPHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_user_week,unique" json:"user_id"`
	WeekStart time.Time `gorm:"index:idx_user_week,unique" json:"week_start"`
	XP        int64     `json:"xp"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
