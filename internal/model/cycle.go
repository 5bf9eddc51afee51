package model

import "time"

// Cycle is one logged unit of work against a task. Append-only;
// Deep marks focused work as opposed to shallow work.
type Cycle struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	TaskID   uint      `gorm:"index" json:"task_id"`
	LoggedAt time.Time `json:"logged_at"`
	Deep     bool      `gorm:"default:false" json:"deep"`
}
