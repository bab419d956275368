package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/task-service/internal/app/fanout"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

// MCPSpecVersion is the MCP protocol revision advertised by Spec.
const MCPSpecVersion = "2025-06-18"

// Names of the tools offered by the MCP tool server.
const (
	ToolSchemaTasks   = "schema_tasks"
	ToolInsertTasks   = "insert_tasks"
	ToolTasksSummary  = "tasks_summary"
	ToolGenerateTasks = "generate_tasks"
	ToolHelp          = "help"
)

// summaryWorkers bounds the concurrent count queries issued by Summary.
const summaryWorkers = 4

// Compile-time check that Reporter implements ports.Reporter.
var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter.
type Reporter struct {
	store  ports.TaskStore
	logger *slog.Logger
}

// NewReporter creates a Reporter. A nil logger is replaced with a no-op logger.
func NewReporter(store ports.TaskStore, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reporter{store: store, logger: logger}
}

// countQuery selects one count. An empty status counts every task.
type countQuery struct {
	status task.Status
}

// Summary counts tasks once per status plus once overall. The counts are
// issued concurrently and are only guaranteed to reconcile when no writes
// run at the same time.
func (r *Reporter) Summary(ctx context.Context) (*task.Summary, error) {
	r.logger.InfoContext(ctx, "summarizing tasks")

	queries := make([]countQuery, 0, len(task.Statuses())+1)
	for _, s := range task.Statuses() {
		queries = append(queries, countQuery{status: s})
	}
	queries = append(queries, countQuery{})

	results := fanout.Run(ctx, summaryWorkers, queries, func(ctx context.Context, q countQuery) (int64, error) {
		if q.status == "" {
			return r.store.Count(ctx)
		}
		return r.store.CountByStatus(ctx, q.status)
	})

	summary := &task.Summary{ByStatus: make(map[task.Status]int64, len(task.Statuses()))}
	for i, res := range results {
		if res.Err != nil {
			r.logger.ErrorContext(ctx, "failed to count tasks",
				slog.String("operation", "Summary"),
				slog.String("status", queries[i].status.String()),
				slog.Any("error", res.Err),
			)
			return nil, fmt.Errorf("counting tasks: %w", res.Err)
		}
		if queries[i].status == "" {
			summary.Total = res.Value
			continue
		}
		summary.ByStatus[queries[i].status] = res.Value
	}

	return summary, nil
}

// TaskSchema returns a JSON-Schema (draft-07) document for a Task. The
// constraints come from the same constants the validator enforces.
func (r *Reporter) TaskSchema() map[string]any {
	statuses := make([]string, 0, len(task.Statuses()))
	for _, s := range task.Statuses() {
		statuses = append(statuses, s.String())
	}

	return map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title":   "Task",
		"type":    "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":      "string",
				"minLength": 1,
				"maxLength": task.MaxTitleLength,
			},
			"description": map[string]any{
				"type":      "string",
				"maxLength": task.MaxDescriptionLength,
			},
			"status": map[string]any{
				"type":    "string",
				"enum":    statuses,
				"default": task.StatusTodo.String(),
			},
			"dueDate": map[string]any{
				"type":   "string",
				"format": "date",
			},
		},
		"required": []string{"title"},
	}
}

// Help returns the capability listing of the MCP surface.
func (r *Reporter) Help() []ports.HelpEntry {
	return []ports.HelpEntry{
		{Name: "schema-tasks", Method: "GET", Path: "/mcp/schema-tasks",
			Description: "Returns the JSON-Schema for Task objects"},
		{Name: "tasks", Method: "POST", Path: "/mcp/tasks",
			Description: fmt.Sprintf("Inserts a JSON array of tasks atomically (1 to %d items)", task.MaxBatchSize)},
		{Name: "tasks-list", Method: "GET", Path: "/mcp/tasks?limit=N",
			Description: "Returns up to N tasks ordered by id"},
		{Name: "tasks-summary", Method: "GET", Path: "/mcp/tasks-summary",
			Description: "Returns task counts per status and the total"},
		{Name: "generate", Method: "POST", Path: "/mcp/generate?count=N",
			Description: fmt.Sprintf("Generates and inserts N sample tasks (max %d)", task.MaxBatchSize)},
		{Name: "spec", Method: "GET", Path: "/mcp/spec",
			Description: "Returns the MCP protocol version and tool names"},
		{Name: "rpc", Method: "POST", Path: "/mcp/rpc",
			Description: "MCP streamable HTTP endpoint exposing the same operations as tools"},
		{Name: "help", Method: "GET", Path: "/mcp/help",
			Description: "Returns this listing"},
	}
}

// Spec returns the MCP protocol descriptor.
func (r *Reporter) Spec() ports.SpecDescriptor {
	return ports.SpecDescriptor{
		SpecVersion: MCPSpecVersion,
		Tools: []string{
			ToolSchemaTasks,
			ToolInsertTasks,
			ToolTasksSummary,
			ToolGenerateTasks,
			ToolHelp,
		},
	}
}
