package repository

import "gorm.io/gorm"

// Store bundles every repository over one database handle.
type Store struct {
	db *gorm.DB

	Users        *UserRepository
	Categories   *CategoryRepository
	Projects     *ProjectRepository
	Tasks        *TaskRepository
	Cycles       *CycleRepository
	Dependencies *DependencyRepository
	XPHistory    *XPHistoryRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		Users:        NewUserRepository(db),
		Categories:   NewCategoryRepository(db),
		Projects:     NewProjectRepository(db),
		Tasks:        NewTaskRepository(db),
		Cycles:       NewCycleRepository(db),
		Dependencies: NewDependencyRepository(db),
		XPHistory:    NewXPHistoryRepository(db),
	}
}

// WithTx runs fn against a store bound to a single transaction. fn returning
// an error rolls every write in the batch back.
func (s *Store) WithTx(fn func(*Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
