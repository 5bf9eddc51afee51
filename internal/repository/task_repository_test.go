package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/PhysicsUofRAUI/project-manager/internal/model"
)

func newTestDB(t *testing.T) *Store {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return NewStore(db)
}

func TestFindOpenByNameAndDeadline(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()
	day := time.Date(2026, time.January, 8, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)
	completedAt := day.Add(12 * time.Hour)

	require.NoError(t, store.Tasks.Create(ctx, &model.Task{Name: "Laundry", Deadline: &day}))
	require.NoError(t, store.Tasks.Create(ctx, &model.Task{Name: "Laundry", Deadline: &otherDay}))
	require.NoError(t, store.Tasks.Create(ctx, &model.Task{Name: "Cooking", Deadline: &day}))
	require.NoError(t, store.Tasks.Create(ctx, &model.Task{Name: "Sweep House", Deadline: &day, CompletedAt: &completedAt}))

	found, err := store.Tasks.FindOpenByNameAndDeadline(ctx, "Laundry", day)
	require.NoError(t, err)
	assert.Equal(t, "Laundry", found.Name)
	require.NotNil(t, found.Deadline)
	assert.Equal(t, "2026-01-08", found.Deadline.Format("2006-01-02"))

	// Same name, different day: no match.
	_, err = store.Tasks.FindOpenByNameAndDeadline(ctx, "Laundry", day.AddDate(0, 0, 2))
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// Completed instances do not satisfy the existence check.
	_, err = store.Tasks.FindOpenByNameAndDeadline(ctx, "Sweep House", day)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestListOpenExcludesCompleted(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()
	completedAt := time.Now()

	require.NoError(t, store.Tasks.Create(ctx, &model.Task{Name: "open"}))
	require.NoError(t, store.Tasks.Create(ctx, &model.Task{Name: "done", CompletedAt: &completedAt}))

	tasks, err := store.Tasks.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "open", tasks[0].Name)
}

func TestGetOrCreateSingletonUser(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	first, err := store.Users.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, first.XP)
	assert.Equal(t, 1, first.Level)

	second, err := store.Users.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
