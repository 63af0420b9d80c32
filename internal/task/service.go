package task

import (
	"fmt"
	"sync"

	"task-tracker/internal/model"
)

// Service is the calling layer in front of a TaskRepository. It validates
// input and holds the one lock that serialises every repository call, so the
// repository itself can stay single-threaded. Results are copies of the
// stored records.
type Service struct {
	mu   sync.Mutex
	repo TaskRepository
}

func NewService(repo TaskRepository) *Service {
	return &Service{repo: repo}
}

// SeedTask is a task created at startup.
type SeedTask struct {
	Title     string
	Completed bool
}

func (s *Service) Create(title string, completed bool) (model.Task, error) {
	valid, err := ValidateTitle(title)
	if err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.repo.Create(valid, completed)
	if err != nil {
		return model.Task{}, err
	}
	return *created, nil
}

func (s *Service) List() ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *t)
	}
	return out, nil
}

func (s *Service) Get(id int) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.repo.Get(id)
	if err != nil {
		return model.Task{}, err
	}
	return *found, nil
}

// Patch overwrites only the supplied fields. With neither field supplied it
// returns the current record unchanged.
func (s *Service) Patch(id int, title *string, completed *bool) (model.Task, error) {
	if title != nil {
		valid, err := ValidateTitle(*title)
		if err != nil {
			return model.Task{}, err
		}
		title = &valid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.repo.Update(id, title, completed)
	if err != nil {
		return model.Task{}, err
	}
	return *updated, nil
}

func (s *Service) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Delete(id)
}

// Seed creates the given tasks in order and returns them.
func (s *Service) Seed(seed []SeedTask) ([]model.Task, error) {
	out := make([]model.Task, 0, len(seed))
	for i, st := range seed {
		created, err := s.Create(st.Title, st.Completed)
		if err != nil {
			return out, fmt.Errorf("seed task %d: %w", i, err)
		}
		out = append(out, created)
	}
	return out, nil
}
