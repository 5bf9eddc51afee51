package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhysicsUofRAUI/project-manager/internal/model"
	"github.com/PhysicsUofRAUI/project-manager/internal/repository"
)

func mustCreateTask(t *testing.T, store *repository.Store, task model.Task) model.Task {
	t.Helper()
	require.NoError(t, store.Tasks.Create(context.Background(), &task))
	return task
}

func TestOverviewCreatesSingletonUser(t *testing.T) {
	store := newTestStore(t)

	overview, err := NewDashboardService(store).Overview(context.Background(), date(2026, time.January, 7), 5)
	require.NoError(t, err)

	assert.EqualValues(t, 0, overview.User.XP)
	assert.Equal(t, 1, overview.Level)
	assert.Equal(t, "Ensign", overview.LevelTitle)
	assert.Empty(t, overview.TopTasks)
}

func TestOverviewTopTasks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	today := date(2026, time.January, 7)

	due := func(days int) *time.Time {
		d := today.AddDate(0, 0, days)
		return &d
	}

	// Seven open tasks with distinct scores, highest first:
	// overdue 3d*100=300, due today 100*1.5=150, overdue 1d*90=90,
	// tomorrow 80, 2d 120/2=60, 5d 100/5=20, no deadline 0.
	mustCreateTask(t, store, model.Task{Name: "neglected", XPAward: 100, Deadline: due(-3)})
	mustCreateTask(t, store, model.Task{Name: "today", XPAward: 100, Deadline: due(0)})
	mustCreateTask(t, store, model.Task{Name: "slipped", XPAward: 90, Deadline: due(-1)})
	mustCreateTask(t, store, model.Task{Name: "tomorrow", XPAward: 80, Deadline: due(1)})
	mustCreateTask(t, store, model.Task{Name: "two days", XPAward: 120, Deadline: due(2)})
	mustCreateTask(t, store, model.Task{Name: "next week", XPAward: 100, Deadline: due(5)})
	mustCreateTask(t, store, model.Task{Name: "someday", XPAward: 1000})

	// Completed tasks never surface, however urgent they look.
	completedAt := today.Add(9 * time.Hour)
	mustCreateTask(t, store, model.Task{Name: "done", XPAward: 9000, Deadline: due(-30), CompletedAt: &completedAt})

	overview, err := NewDashboardService(store).Overview(ctx, today, 5)
	require.NoError(t, err)

	require.Len(t, overview.TopTasks, 5)
	gotNames := make([]string, 0, 5)
	for _, task := range overview.TopTasks {
		gotNames = append(gotNames, task.Name)
	}
	assert.Equal(t, []string{"neglected", "today", "slipped", "tomorrow", "two days"}, gotNames)

	for i := 1; i < len(overview.TopTasks); i++ {
		assert.GreaterOrEqual(t, overview.TopTasks[i-1].Score, overview.TopTasks[i].Score)
	}
}

// Equal scores keep the fetch order (ascending id); the stable sort is part
// of the dashboard contract.
func TestOverviewStableTieBreak(t *testing.T) {
	store := newTestStore(t)
	today := date(2026, time.January, 7)
	tomorrow := today.AddDate(0, 0, 1)

	first := mustCreateTask(t, store, model.Task{Name: "first", XPAward: 70, Deadline: &tomorrow})
	second := mustCreateTask(t, store, model.Task{Name: "second", XPAward: 70, Deadline: &tomorrow})

	overview, err := NewDashboardService(store).Overview(context.Background(), today, 5)
	require.NoError(t, err)

	require.Len(t, overview.TopTasks, 2)
	assert.Equal(t, first.ID, overview.TopTasks[0].ID)
	assert.Equal(t, second.ID, overview.TopTasks[1].ID)
}

func TestOverviewTruncation(t *testing.T) {
	store := newTestStore(t)
	today := date(2026, time.January, 7)

	for i := 0; i < 3; i++ {
		deadline := today.AddDate(0, 0, i+1)
		mustCreateTask(t, store, model.Task{Name: "task", XPAward: 50, Deadline: &deadline})
	}

	overview, err := NewDashboardService(store).Overview(context.Background(), today, 2)
	require.NoError(t, err)
	assert.Len(t, overview.TopTasks, 2)
}
