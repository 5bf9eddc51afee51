package service

import (
	"context"
	"sort"
	"time"

	"github.com/PhysicsUofRAUI/project-manager/internal/model"
	"github.com/PhysicsUofRAUI/project-manager/internal/repository"
)

// ScoredTask pairs a task with its urgency score for display.
type ScoredTask struct {
	model.Task
	Score float64
}

// Overview is everything the dashboard view renders.
type Overview struct {
	User       model.User
	Level      int
	LevelTitle string
	TopTasks   []ScoredTask
}

// DashboardService composes scoring over the open task set and translates the
// user's XP total into a title. Read-only apart from the lazy user creation.
type DashboardService struct {
	store *repository.Store
}

func NewDashboardService(store *repository.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Overview returns the user's progression plus the n highest-scoring open
// tasks, descending. The sort is stable, so equal scores keep the store's
// fetch order (ascending id).
func (s *DashboardService) Overview(ctx context.Context, now time.Time, n int) (*Overview, error) {
	user, err := s.store.Users.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	level, title := LevelForXP(user.XP)

	tasks, err := s.store.Tasks.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	scored := make([]ScoredTask, 0, len(tasks))
	for _, task := range tasks {
		scored = append(scored, ScoredTask{Task: task, Score: Score(task, now)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if n >= 0 && len(scored) > n {
		scored = scored[:n]
	}

	return &Overview{
		User:       *user,
		Level:      level,
		LevelTitle: title,
		TopTasks:   scored,
	}, nil
}
