package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/PhysicsUofRAUI/project-manager/internal/model"
)

// DependencyRepository records prerequisite edges between tasks.
type DependencyRepository struct {
	db *gorm.DB
}

func NewDependencyRepository(db *gorm.DB) *DependencyRepository {
	return &DependencyRepository{db: db}
}

func (r *DependencyRepository) Create(ctx context.Context, dep *model.TaskDependency) error {
	if err := r.db.WithContext(ctx).Create(dep).Error; err != nil {
		return fmt.Errorf("create dependency: %w", err)
	}
	return nil
}

func (r *DependencyRepository) List(ctx context.Context) ([]model.TaskDependency, error) {
	var deps []model.TaskDependency
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&deps).Error; err != nil {
		return nil, err
	}
	return deps, nil
}

func (r *DependencyRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.TaskDependency{}, id).Error; err != nil {
		return fmt.Errorf("delete dependency: %w", err)
	}
	return nil
}
