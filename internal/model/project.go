package model

import "time"

// Project groups tasks. Sub-projects are modelled as a parent id only;
// children are looked up through the repository, never held as object links.
type Project struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CategoryID      *uint      `gorm:"index" json:"category_id"`
	ParentProjectID *uint      `gorm:"index" json:"parent_project_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Deadline        *time.Time `json:"deadline"`
	PercentComplete int        `gorm:"default:0" json:"percent_complete"`
	Ongoing         bool       `gorm:"default:false" json:"ongoing"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
