package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/PhysicsUofRAUI/project-manager/internal/model"
	"github.com/PhysicsUofRAUI/project-manager/internal/repository"
)

// WeeklyRule declares a task that must exist on each of its listed weekdays.
type WeeklyRule struct {
	Name        string
	Description string
	XPAward     int
	Effort      int
	Days        []time.Weekday
}

// RuleVariant is one of the two alternating names of a bi-weekly rule.
type RuleVariant struct {
	Name        string
	Description string
}

// BiweeklyRule alternates between two task variants on its trigger weekday,
// selected by ISO week parity: even weeks take Even, odd weeks take Odd.
type BiweeklyRule struct {
	Trigger time.Weekday
	XPAward int
	Effort  int
	Even    RuleVariant
	Odd     RuleVariant
}

// RuleSet is the full recurring-chore configuration. The generator is driven
// entirely by this data; new chores are added here, not in code.
type RuleSet struct {
	Weekly   []WeeklyRule
	Biweekly []BiweeklyRule
}

// DefaultRules returns the household chore schedule.
func DefaultRules() RuleSet {
	return RuleSet{
		Weekly: []WeeklyRule{
			{
				Name:        "Cooking",
				Description: "Make food (Tue, Thu, Sun)",
				XPAward:     50,
				Effort:      1,
				Days:        []time.Weekday{time.Tuesday, time.Thursday, time.Sunday},
			},
			{
				Name:        "Sweep House",
				Description: "Sweep the house (Mon)",
				XPAward:     30,
				Effort:      1,
				Days:        []time.Weekday{time.Monday},
			},
			{
				Name:        "Laundry",
				Description: "Do Laundry (Thu)",
				XPAward:     40,
				Effort:      1,
				Days:        []time.Weekday{time.Thursday},
			},
		},
		Biweekly: []BiweeklyRule{
			{
				Trigger: time.Tuesday,
				XPAward: 100,
				Effort:  2,
				Even:    RuleVariant{Name: "Clean Bathroom", Description: "Bi-weekly cleaning task"},
				Odd:     RuleVariant{Name: "Clean Floors", Description: "Bi-weekly cleaning task"},
			},
		},
	}
}

// RecurrenceService reconciles the task store against the rule set: for a
// given day, every applicable rule ends up with exactly one open task instance.
type RecurrenceService struct {
	store *repository.Store
	rules RuleSet
	log   *slog.Logger
}

func NewRecurrenceService(store *repository.Store, rules RuleSet, log *slog.Logger) *RecurrenceService {
	return &RecurrenceService{store: store, rules: rules, log: log}
}

// Reconcile inserts the recurring tasks due on today's date that do not exist
// yet as open tasks. All inserts of one pass share a transaction, so a failure
// leaves nothing half-applied; the existence check makes re-runs within the
// same day no-ops.
func (s *RecurrenceService) Reconcile(ctx context.Context, today time.Time) error {
	day := DateOnly(today)
	weekday := day.Weekday()
	_, isoWeek := day.ISOWeek()

	err := s.store.WithTx(func(tx *repository.Store) error {
		for _, rule := range s.rules.Weekly {
			if !onDay(rule.Days, weekday) {
				continue
			}
			if err := s.ensureTask(ctx, tx, day, rule.Name, rule.Description, rule.XPAward, rule.Effort); err != nil {
				return err
			}
		}

		for _, rule := range s.rules.Biweekly {
			if rule.Trigger != weekday {
				continue
			}
			variant := rule.Odd
			if isoWeek%2 == 0 {
				variant = rule.Even
			}
			if err := s.ensureTask(ctx, tx, day, variant.Name, variant.Description, rule.XPAward, rule.Effort); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("reconcile recurring tasks for %s: %w", day.Format("2006-01-02"), err)
	}
	return nil
}

func (s *RecurrenceService) ensureTask(ctx context.Context, tx *repository.Store, day time.Time, name, description string, xp, effort int) error {
	_, err := tx.Tasks.FindOpenByNameAndDeadline(ctx, name, day)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	deadline := day
	task := model.Task{
		Name:            name,
		Description:     description,
		XPAward:         xp,
		EstimatedCycles: effort,
		Deadline:        &deadline,
	}
	if err := tx.Tasks.Create(ctx, &task); err != nil {
		return err
	}
	s.log.Info("auto-generated task", "name", name, "deadline", day.Format("2006-01-02"))
	return nil
}

func onDay(days []time.Weekday, day time.Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
