package task_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/model"
	"task-tracker/internal/store/memorystore"
	"task-tracker/internal/task"
)

func ptr[T any](v T) *T { return &v }

func newService() *task.Service {
	return task.NewService(memorystore.NewTaskStore())
}

func TestValidateTitle(t *testing.T) {
	got, err := task.ValidateTitle("  Buy milk \n")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got)

	// "e" + combining acute becomes the precomposed form
	got, err = task.ValidateTitle("Cafe\u0301")
	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9", got)

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := task.ValidateTitle(in)
		assert.ErrorIs(t, err, task.ErrInvalidTitle, "input %q", in)
	}
}

func TestService_CreateListScenario(t *testing.T) {
	svc := newService()

	t1, err := svc.Create("Task 1", false)
	require.NoError(t, err)
	t2, err := svc.Create("Task 2", true)
	require.NoError(t, err)

	assert.Equal(t, 1, t1.ID())
	assert.Equal(t, 2, t2.ID())

	tasks, err := svc.List()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, *model.NewTask(1, "Task 1", false), tasks[0])
	assert.Equal(t, *model.NewTask(2, "Task 2", true), tasks[1])
}

func TestService_CreateRejectsBlankTitle(t *testing.T) {
	svc := newService()

	_, err := svc.Create("   ", false)
	assert.ErrorIs(t, err, task.ErrInvalidTitle)

	tasks, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestService_PatchCompletedScenario(t *testing.T) {
	svc := newService()

	_, err := svc.Create("X", false)
	require.NoError(t, err)

	updated, err := svc.Patch(1, nil, ptr(true))
	require.NoError(t, err)
	assert.Equal(t, *model.NewTask(1, "X", true), updated)

	got, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, *model.NewTask(1, "X", true), got)
}

func TestService_PatchTrimsTitle(t *testing.T) {
	svc := newService()
	created, err := svc.Create("old", true)
	require.NoError(t, err)

	updated, err := svc.Patch(created.ID(), ptr("  new  "), nil)
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title())
	assert.True(t, updated.Completed())
}

func TestService_PatchRejectsBlankTitle(t *testing.T) {
	svc := newService()
	created, err := svc.Create("keep", false)
	require.NoError(t, err)

	_, err = svc.Patch(created.ID(), ptr("  "), ptr(true))
	assert.ErrorIs(t, err, task.ErrInvalidTitle)

	got, err := svc.Get(created.ID())
	require.NoError(t, err)
	assert.Equal(t, "keep", got.Title())
	assert.False(t, got.Completed())
}

func TestService_PatchNoFieldsIsNoop(t *testing.T) {
	svc := newService()
	created, err := svc.Create("same", true)
	require.NoError(t, err)

	updated, err := svc.Patch(created.ID(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestService_ReturnsSnapshots(t *testing.T) {
	svc := newService()
	created, err := svc.Create("before", false)
	require.NoError(t, err)

	_, err = svc.Patch(created.ID(), ptr("after"), nil)
	require.NoError(t, err)

	assert.Equal(t, "before", created.Title())
}

func TestService_DeleteScenario(t *testing.T) {
	svc := newService()
	_, err := svc.Create("Y", false)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1))

	_, err = svc.Get(1)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	tasks, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestService_NotFoundOnEmpty(t *testing.T) {
	svc := newService()

	_, err := svc.Get(999)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = svc.Patch(999, ptr("x"), nil)
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(999), model.ErrNotFound)
}

func TestService_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	svc := newService()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := svc.Create("parallel", false)
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			ids <- created.ID()
			_, _ = svc.Patch(created.ID(), nil, ptr(true))
			_, _ = svc.List()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	for id := 1; id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}

func TestService_Seed(t *testing.T) {
	svc := newService()

	seeded, err := svc.Seed([]task.SeedTask{
		{Title: "first"},
		{Title: "second", Completed: true},
	})
	require.NoError(t, err)
	require.Len(t, seeded, 2)
	assert.Equal(t, 2, seeded[1].ID())
	assert.True(t, seeded[1].Completed())

	_, err = svc.Seed([]task.SeedTask{{Title: "ok"}, {Title: " "}})
	assert.ErrorIs(t, err, task.ErrInvalidTitle)
}

type failingRepo struct{ task.TaskRepository }

func (failingRepo) List() ([]*model.Task, error) { return nil, errors.New("boom") }

func TestService_PropagatesRepoErrors(t *testing.T) {
	svc := task.NewService(failingRepo{})

	_, err := svc.List()
	require.EqualError(t, err, "boom")
	assert.False(t, errors.Is(err, model.ErrNotFound))
}
