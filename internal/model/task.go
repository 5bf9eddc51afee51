package model

import "time"

// Task is the unit of work. Completion state is carried by CompletedAt:
// a task is open iff CompletedAt is nil.
type Task struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	ProjectID       *uint      `gorm:"index" json:"project_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	EstimatedCycles int        `gorm:"default:1" json:"estimated_cycles"`
	CyclesUsed      int        `gorm:"default:0" json:"cycles_used"`
	XPAward         int        `gorm:"default:0" json:"xp_award"`
	Deadline        *time.Time `json:"deadline"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Open reports whether the task still counts towards the dashboard.
func (t Task) Open() bool {
	return t.CompletedAt == nil
}
