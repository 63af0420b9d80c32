// Package memorystore keeps tasks in process memory. Nothing survives a
// restart.
package memorystore

import (
	"task-tracker/internal/model"
	"task-tracker/internal/task"
)

var _ task.TaskRepository = (*TaskStore)(nil)

// TaskStore is not safe for concurrent use; callers serialise access
// (see task.Service).
type TaskStore struct {
	tasks  []*model.Task
	nextID int
}

func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: []*model.Task{}, nextID: 1}
}

// List returns every stored task in insertion order. The slice is fresh but
// the records are shared with the store.
func (s *TaskStore) List() ([]*model.Task, error) {
	out := make([]*model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// Create assigns the next id and appends the task. Ids are never reused,
// even after Delete.
func (s *TaskStore) Create(title string, completed bool) (*model.Task, error) {
	t := model.NewTask(s.nextID, title, completed)
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *TaskStore) Get(id int) (*model.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, model.NewNotFoundError("")
	}
	return s.tasks[i], nil
}

func (s *TaskStore) Update(id int, title *string, completed *bool) (*model.Task, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		t.SetTitle(*title)
	}
	if completed != nil {
		t.SetCompleted(*completed)
	}
	return t, nil
}

func (s *TaskStore) Delete(id int) error {
	i := s.indexOf(id)
	if i < 0 {
		return model.NewNotFoundError("")
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

func (s *TaskStore) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID() == id {
			return i
		}
	}
	return -1
}
