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

// Reference dates: 2026-01-05 is a Monday, 2026-01-06 a Tuesday in ISO week 2,
// 2026-01-08 a Thursday, 2026-01-13 a Tuesday in ISO week 3.

func newRecurrence(store *repository.Store) *RecurrenceService {
	return NewRecurrenceService(store, DefaultRules(), newTestLogger())
}

func openTaskNames(t *testing.T, store *repository.Store) map[string]model.Task {
	t.Helper()
	tasks, err := store.Tasks.ListOpen(context.Background())
	require.NoError(t, err)
	byName := make(map[string]model.Task, len(tasks))
	for _, task := range tasks {
		byName[task.Name] = task
	}
	return byName
}

func TestReconcileThursday(t *testing.T) {
	store := newTestStore(t)
	thursday := date(2026, time.January, 8)

	require.NoError(t, newRecurrence(store).Reconcile(context.Background(), thursday))

	tasks := openTaskNames(t, store)
	require.Len(t, tasks, 2)

	laundry, ok := tasks["Laundry"]
	require.True(t, ok, "Laundry must be generated on Thursdays")
	assert.Equal(t, 40, laundry.XPAward)
	assert.Equal(t, 1, laundry.EstimatedCycles)
	assert.Equal(t, 0, laundry.CyclesUsed)
	assert.Nil(t, laundry.CompletedAt)
	require.NotNil(t, laundry.Deadline)
	assert.Equal(t, "2026-01-08", laundry.Deadline.Format("2006-01-02"))

	_, ok = tasks["Cooking"]
	assert.True(t, ok, "Cooking runs Tue/Thu/Sun")
}

func TestReconcileMonday(t *testing.T) {
	store := newTestStore(t)
	monday := date(2026, time.January, 5)

	require.NoError(t, newRecurrence(store).Reconcile(context.Background(), monday))

	tasks := openTaskNames(t, store)
	require.Len(t, tasks, 1)
	sweep, ok := tasks["Sweep House"]
	require.True(t, ok)
	assert.Equal(t, 30, sweep.XPAward)
}

func TestReconcileBiweeklyParity(t *testing.T) {
	t.Run("even ISO week picks Clean Bathroom", func(t *testing.T) {
		store := newTestStore(t)
		evenTuesday := date(2026, time.January, 6)

		require.NoError(t, newRecurrence(store).Reconcile(context.Background(), evenTuesday))

		tasks := openTaskNames(t, store)
		bathroom, ok := tasks["Clean Bathroom"]
		require.True(t, ok)
		assert.Equal(t, 100, bathroom.XPAward)
		assert.Equal(t, 2, bathroom.EstimatedCycles)

		_, floors := tasks["Clean Floors"]
		assert.False(t, floors, "odd-week variant must not appear in an even week")
	})

	t.Run("odd ISO week picks Clean Floors", func(t *testing.T) {
		store := newTestStore(t)
		oddTuesday := date(2026, time.January, 13)

		require.NoError(t, newRecurrence(store).Reconcile(context.Background(), oddTuesday))

		tasks := openTaskNames(t, store)
		_, bathroom := tasks["Clean Bathroom"]
		assert.False(t, bathroom)
		floors, ok := tasks["Clean Floors"]
		require.True(t, ok)
		assert.Equal(t, 100, floors.XPAward)
	})
}

func TestReconcileIdempotent(t *testing.T) {
	store := newTestStore(t)
	svc := newRecurrence(store)
	tuesday := date(2026, time.January, 6)

	require.NoError(t, svc.Reconcile(context.Background(), tuesday))
	first, err := store.Tasks.ListOpen(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Reconcile(context.Background(), tuesday))
	second, err := store.Tasks.ListOpen(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second), "re-running the same day must not duplicate tasks")
}

// Only open instances satisfy the existence check: completing today's chore
// and reconciling again brings a fresh open instance back.
func TestReconcileRegeneratesAfterCompletion(t *testing.T) {
	store := newTestStore(t)
	svc := newRecurrence(store)
	thursday := date(2026, time.January, 8)
	ctx := context.Background()

	require.NoError(t, svc.Reconcile(ctx, thursday))

	laundry := openTaskNames(t, store)["Laundry"]
	done := thursday.Add(10 * time.Hour)
	laundry.CompletedAt = &done
	require.NoError(t, store.Tasks.Save(ctx, &laundry))

	require.NoError(t, svc.Reconcile(ctx, thursday))

	fresh, ok := openTaskNames(t, store)["Laundry"]
	require.True(t, ok)
	assert.NotEqual(t, laundry.ID, fresh.ID)
	assert.Nil(t, fresh.CompletedAt)
}

func TestReconcileOffDayDoesNothing(t *testing.T) {
	store := newTestStore(t)
	wednesday := date(2026, time.January, 7)

	require.NoError(t, newRecurrence(store).Reconcile(context.Background(), wednesday))

	tasks, err := store.Tasks.ListOpen(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
