package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/observability/jsonlog"
	"task-tracker/internal/task"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.service.List()
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

type createTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeRequestError(w, err)
		return
	}
	if req.Title == nil {
		writeError(w, http.StatusBadRequest, errTitleNotString.Error())
		return
	}

	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	created, err := s.service.Create(*req.Title, completed)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	found, err := s.service.Get(id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

type patchTaskRequest struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

func (s *Server) handlePatchTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req patchTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeRequestError(w, err)
		return
	}

	updated, err := s.service.Patch(id, req.Title, req.Completed)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.service.Delete(id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(r.PathValue("id")))
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

func (s *Server) writeRequestError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

// writeServiceError maps task-layer errors to responses. Anything that is
// neither a validation nor a not-found error is a 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *model.NotFoundError
	switch {
	case errors.Is(err, task.ErrInvalidTitle):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &nf):
		writeError(w, http.StatusNotFound, nf.Error())
	default:
		s.logger.Error("request_failed", jsonlog.Fields{
			"rid":    RequestIDFromContext(r.Context()),
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err,
		})
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
