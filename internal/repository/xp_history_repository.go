package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/PhysicsUofRAUI/project-manager/internal/model"
)

// XPHistoryRepository keeps weekly XP snapshots keyed by the Monday of the week.
type XPHistoryRepository struct {
	db *gorm.DB
}

func NewXPHistoryRepository(db *gorm.DB) *XPHistoryRepository {
	return &XPHistoryRepository{db: db}
}

// AddXP adds amount to the snapshot for the given week, creating the row on
// first write in that week.
func (r *XPHistoryRepository) AddXP(ctx context.Context, userID uint, weekStart time.Time, amount int64) error {
	var entry model.XPHistory
	db := r.db.WithContext(ctx)
	err := db.Where("user_id = ? AND week_start = ?", userID, weekStart).First(&entry).Error
	switch {
	case err == nil:
		entry.XP += amount
		if err := db.Save(&entry).Error; err != nil {
			return fmt.Errorf("update xp history: %w", err)
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = model.XPHistory{UserID: userID, WeekStart: weekStart, XP: amount}
		if err := db.Create(&entry).Error; err != nil {
			return fmt.Errorf("create xp history: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("find xp history: %w", err)
	}
}

func (r *XPHistoryRepository) ListByUser(ctx context.Context, userID uint) ([]model.XPHistory, error) {
	var entries []model.XPHistory
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("week_start ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
