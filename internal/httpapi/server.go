package httpapi

import (
	"net/http"
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/observability/jsonlog"
)

// TaskService is what the transport needs from the task layer.
type TaskService interface {
	List() ([]model.Task, error)
	Create(title string, completed bool) (model.Task, error)
	Get(id int) (model.Task, error)
	Patch(id int, title *string, completed *bool) (model.Task, error)
	Delete(id int) error
}

type Options struct {
	Logger         *jsonlog.Logger
	RequestTimeout time.Duration
}

type Server struct {
	service TaskService
	logger  *jsonlog.Logger
	mux     *http.ServeMux
	handler http.Handler
}

func NewServer(service TaskService, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = jsonlog.Discard()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 3 * time.Second
	}

	srv := &Server{
		service: service,
		logger:  opts.Logger,
		mux:     http.NewServeMux(),
	}

	srv.mux.HandleFunc("GET /healthz", srv.handleHealth)

	srv.mux.HandleFunc("GET /tasks", srv.handleListTasks)
	srv.mux.HandleFunc("POST /tasks", srv.handleCreateTask)
	srv.mux.HandleFunc("GET /tasks/{id}", srv.handleGetTask)
	srv.mux.HandleFunc("PUT /tasks/{id}", srv.handlePatchTask)
	srv.mux.HandleFunc("PATCH /tasks/{id}", srv.handlePatchTask)
	srv.mux.HandleFunc("DELETE /tasks/{id}", srv.handleDeleteTask)

	srv.handler = Chain(srv.mux,
		WithRequestID,
		Logging(opts.Logger),
		WithRecover(opts.Logger),
		WithTimeout(opts.RequestTimeout),
	)
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
