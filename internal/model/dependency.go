package model

// TaskDependency is a directed prerequisite edge between two tasks.
// Recorded and browsable, but nothing schedules around it yet.
type TaskDependency struct {
	ID                 uint `gorm:"primaryKey" json:"id"`
	PrerequisiteTaskID uint `gorm:"index" json:"prerequisite_task_id"`
	DependantTaskID    uint `gorm:"index" json:"dependant_task_id"`
}
