package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PhysicsUofRAUI/project-manager/internal/model"
)

func taskDue(xp int, deadline time.Time) model.Task {
	return model.Task{Name: "t", XPAward: xp, Deadline: &deadline}
}

func TestScoreNoDeadline(t *testing.T) {
	task := model.Task{Name: "someday", XPAward: 500}
	assert.Zero(t, Score(task, date(2026, time.January, 7)))
}

func TestScoreAroundDeadline(t *testing.T) {
	today := date(2026, time.January, 7)

	tests := []struct {
		name     string
		deadline time.Time
		want     float64
	}{
		{"due tomorrow", today.AddDate(0, 0, 1), 100},
		{"due today", today, 150},
		{"one day overdue", today.AddDate(0, 0, -1), 100},
		{"two days overdue", today.AddDate(0, 0, -2), 200},
		{"ten days overdue", today.AddDate(0, 0, -10), 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(taskDue(100, tt.deadline), today), 1e-9)
		})
	}
}

// A task due in d days scores xp/d, so urgency strictly decreases the further
// out the deadline is.
func TestScoreFutureDecreasing(t *testing.T) {
	today := date(2026, time.January, 7)

	prev := Score(taskDue(300, today.AddDate(0, 0, 1)), today)
	assert.InDelta(t, 300.0, prev, 1e-9)

	for d := 2; d <= 30; d++ {
		got := Score(taskDue(300, today.AddDate(0, 0, d)), today)
		assert.InDelta(t, 300.0/float64(d), got, 1e-9)
		assert.Less(t, got, prev, "score must decrease at d=%d", d)
		prev = got
	}
}

// Due-today must outrank due-tomorrow, and a 1-day-overdue task ties with one
// due tomorrow. The escalation ordering is part of the contract.
func TestScoreOrdering(t *testing.T) {
	today := date(2026, time.January, 7)

	dueToday := Score(taskDue(100, today), today)
	dueTomorrow := Score(taskDue(100, today.AddDate(0, 0, 1)), today)
	oneLate := Score(taskDue(100, today.AddDate(0, 0, -1)), today)
	twoLate := Score(taskDue(100, today.AddDate(0, 0, -2)), today)

	assert.Greater(t, dueToday, dueTomorrow)
	assert.Equal(t, dueTomorrow, oneLate)
	assert.Greater(t, twoLate, dueToday)
}

func TestScoreIgnoresTimeOfDay(t *testing.T) {
	deadline := date(2026, time.January, 8)
	lateEvening := time.Date(2026, time.January, 7, 23, 45, 0, 0, time.UTC)
	assert.InDelta(t, 100.0, Score(taskDue(100, deadline), lateEvening), 1e-9)
}
