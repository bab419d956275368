package task

import (
	domtask "github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

// ToDomainTask converts a remote TaskDTO to a domain Task. An unparseable
// due date is dropped rather than failing the whole response.
func ToDomainTask(dto *TaskDTO) domtask.Task {
	t := domtask.Task{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Status:      domtask.Status(dto.Status),
	}
	if dto.DueDate != "" {
		if d, err := domtask.ParseDate(dto.DueDate); err == nil {
			t.DueDate = &d
		}
	}
	return t
}

// ToDomainTaskList converts a remote task array. A nil slice becomes empty.
func ToDomainTaskList(dtos []TaskDTO) []domtask.Task {
	tasks := make([]domtask.Task, len(dtos))
	for i := range dtos {
		tasks[i] = ToDomainTask(&dtos[i])
	}
	return tasks
}

// ToTaskRequest converts a domain Task to a batch element.
func ToTaskRequest(t *domtask.Task) TaskRequestDTO {
	req := TaskRequestDTO{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.String(),
	}
	if t.DueDate != nil {
		req.DueDate = t.DueDate.String()
	}
	return req
}

// ToTaskRequests converts a batch of domain Tasks in order.
func ToTaskRequests(tasks []domtask.Task) []TaskRequestDTO {
	out := make([]TaskRequestDTO, len(tasks))
	for i := range tasks {
		out[i] = ToTaskRequest(&tasks[i])
	}
	return out
}

// ToDomainSummary converts remote counts. Unknown status keys are ignored.
func ToDomainSummary(dto SummaryDTO) domtask.Summary {
	by := make(map[domtask.Status]int64, len(domtask.Statuses()))
	for _, st := range domtask.Statuses() {
		by[st] = dto.ByStatus[st.String()]
	}
	return domtask.Summary{ByStatus: by, Total: dto.Total}
}

// ToHelpEntries converts the remote capability listing.
func ToHelpEntries(dto HelpDTO) []ports.HelpEntry {
	out := make([]ports.HelpEntry, len(dto.Endpoints))
	for i, e := range dto.Endpoints {
		out[i] = ports.HelpEntry(e)
	}
	return out
}
