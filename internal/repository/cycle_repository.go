package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/PhysicsUofRAUI/project-manager/internal/model"
)

// CycleRepository is an append-only log of work units.
type CycleRepository struct {
	db *gorm.DB
}

func NewCycleRepository(db *gorm.DB) *CycleRepository {
	return &CycleRepository{db: db}
}

func (r *CycleRepository) Create(ctx context.Context, cycle *model.Cycle) error {
	if err := r.db.WithContext(ctx).Create(cycle).Error; err != nil {
		return fmt.Errorf("create cycle: %w", err)
	}
	return nil
}

func (r *CycleRepository) ListByTask(ctx context.Context, taskID uint) ([]model.Cycle, error) {
	var cycles []model.Cycle
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).
		Order("logged_at ASC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}
