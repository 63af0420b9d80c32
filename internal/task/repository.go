package task

import "task-tracker/internal/model"

// TaskRepository owns the canonical task records. A nil title or completed
// passed to Update means "leave unchanged".
type TaskRepository interface {
	List() ([]*model.Task, error)
	Create(title string, completed bool) (*model.Task, error)
	Get(id int) (*model.Task, error)
	Update(id int, title *string, completed *bool) (*model.Task, error)
	Delete(id int) error
}
