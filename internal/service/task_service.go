package service

import (
	"context"
	"fmt"
	"time"

	"github.com/PhysicsUofRAUI/project-manager/internal/model"
	"github.com/PhysicsUofRAUI/project-manager/internal/repository"
)

// TaskInput represents data required to create a task by hand.
type TaskInput struct {
	Name            string
	Description     string
	EstimatedCycles int
	XPAward         int
	Deadline        *time.Time
	ProjectID       *uint
}

// TaskService wraps task-related business logic: creation, completion with
// XP accounting, and cycle logging.
type TaskService struct {
	store *repository.Store
}

func NewTaskService(store *repository.Store) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if input.XPAward < 0 {
		return nil, fmt.Errorf("xp award must not be negative")
	}

	estimated := input.EstimatedCycles
	if estimated <= 0 {
		estimated = 1
	}

	var deadline *time.Time
	if input.Deadline != nil {
		d := DateOnly(*input.Deadline)
		deadline = &d
	}

	task := model.Task{
		Name:            input.Name,
		Description:     input.Description,
		EstimatedCycles: estimated,
		XPAward:         input.XPAward,
		Deadline:        deadline,
		ProjectID:       input.ProjectID,
	}

	if err := s.store.Tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID uint) (*model.Task, error) {
	return s.store.Tasks.FindByID(ctx, taskID)
}

// CompleteTask stamps the completion time, credits the XP award to the user,
// refreshes the cached level, and adds the award to this week's XP snapshot.
// All of it commits or none of it does.
func (s *TaskService) CompleteTask(ctx context.Context, taskID uint, completedAt time.Time) (*model.Task, error) {
	var completed *model.Task
	err := s.store.WithTx(func(tx *repository.Store) error {
		task, err := tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		if !task.Open() {
			return fmt.Errorf("task %d is already completed", task.ID)
		}

		task.CompletedAt = &completedAt
		if err := tx.Tasks.Save(ctx, task); err != nil {
			return err
		}

		user, err := tx.Users.GetOrCreate(ctx)
		if err != nil {
			return err
		}
		user.XP += int64(task.XPAward)
		user.Level, _ = LevelForXP(user.XP)
		if err := tx.Users.Save(ctx, user); err != nil {
			return err
		}

		if err := tx.XPHistory.AddXP(ctx, user.ID, WeekStart(completedAt), int64(task.XPAward)); err != nil {
			return err
		}

		completed = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

// LogCycle appends one work unit to the task's log and bumps its counter.
func (s *TaskService) LogCycle(ctx context.Context, taskID uint, deep bool, at time.Time) (*model.Cycle, error) {
	var logged *model.Cycle
	err := s.store.WithTx(func(tx *repository.Store) error {
		task, err := tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return err
		}

		cycle := model.Cycle{TaskID: task.ID, LoggedAt: at, Deep: deep}
		if err := tx.Cycles.Create(ctx, &cycle); err != nil {
			return err
		}

		task.CyclesUsed++
		if err := tx.Tasks.Save(ctx, task); err != nil {
			return err
		}

		logged = &cycle
		return nil
	})
	if err != nil {
		return nil, err
	}
	return logged, nil
}

// DeleteTask removes a task entirely. Administrative; the core never deletes.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint) error {
	return s.store.Tasks.Delete(ctx, taskID)
}
