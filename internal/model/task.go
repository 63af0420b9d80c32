package model

import "encoding/json"

// Task is one unit of work. The id is fixed at construction; title and
// completed may change independently.
type Task struct {
	id        int
	title     string
	completed bool
}

// NewTask builds a record with exactly the given values. Callers validate
// before constructing.
func NewTask(id int, title string, completed bool) *Task {
	return &Task{id: id, title: title, completed: completed}
}

func (t *Task) ID() int { return t.id }

func (t *Task) Title() string { return t.title }

func (t *Task) SetTitle(title string) { t.title = title }

func (t *Task) Completed() bool { return t.completed }

func (t *Task) SetCompleted(completed bool) { t.completed = completed }

type taskJSON struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskJSON{ID: t.id, Title: t.title, Completed: t.completed})
}
