package service

import (
	"time"

	"github.com/PhysicsUofRAUI/project-manager/internal/model"
)

// dueTodayBoost lifts a task due today above one due tomorrow, which would
// otherwise score exactly its XP award.
const dueTodayBoost = 1.5

// Score computes the urgency of a task relative to today. Pure; higher means
// more urgent. Tasks without a deadline score 0 and are never prioritized
// above any deadline-bearing task.
//
// The overdue branch grows with neglect: a task N days late scores N times its
// XP award, so a 1-day-overdue task ties with one due tomorrow. That tie is
// part of the scoring contract, not an accident.
func Score(task model.Task, today time.Time) float64 {
	if task.Deadline == nil {
		return 0
	}

	delta := daysBetween(today, *task.Deadline)
	xp := float64(task.XPAward)

	switch {
	case delta > 0:
		return xp / float64(delta)
	case delta == 0:
		return xp * dueTodayBoost
	default:
		return float64(-delta) * xp
	}
}
