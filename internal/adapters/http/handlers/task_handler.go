package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

// TaskHandler handles the /tasks CRUD and query endpoints.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// List handles GET /tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(t))
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t := req.ToTask()
	created, err := h.svc.Create(r.Context(), &t)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.ToTaskResponse(created))
}

// Update handles PUT /tasks/{id}. Every field is replaced; omitted optional
// fields are cleared and an omitted status becomes TODO.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t := req.ToTask()
	updated, err := h.svc.Update(r.Context(), id, &t)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(updated))
}

// UpdateStatus handles PATCH /tasks/{id}/status.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.StatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateStatus(r.Context(), id, task.Status(req.Status))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(updated))
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListByStatus handles GET /tasks/status/{status}. The path value must be an
// exact status name, as in request bodies.
func (h *TaskHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := task.ParseStatus(chi.URLParam(r, "status"))
	if !ok {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("status", task.MsgStatusInvalid))
		return
	}

	h.writeList(w, r)(h.svc.ListByStatus(r.Context(), status))
}

// Overdue handles GET /tasks/overdue.
func (h *TaskHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r)(h.svc.Overdue(r.Context()))
}

// DueToday handles GET /tasks/due-today.
func (h *TaskHandler) DueToday(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r)(h.svc.DueToday(r.Context()))
}

// Search handles GET /tasks/search?q=.
func (h *TaskHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r)(h.svc.SearchByTitle(r.Context(), r.URL.Query().Get("q")))
}

func (h *TaskHandler) writeList(w http.ResponseWriter, r *http.Request) func([]task.Task, error) {
	return func(tasks []task.Task, err error) {
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
	}
}
