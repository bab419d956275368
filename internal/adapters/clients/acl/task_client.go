package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	acltask "github.com/jsamuelsen11/task-service/internal/adapters/clients/acl/task"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaskAPIClient = (*TaskClient)(nil)
	_ ports.HealthChecker = (*TaskClient)(nil)
)

// Remote paths of the MCP surface.
const (
	pathSchema  = "/mcp/schema-tasks"
	pathTasks   = "/mcp/tasks"
	pathSummary = "/mcp/tasks-summary"
	pathGen     = "/mcp/generate"
	pathHelp    = "/mcp/help"
	pathReady   = "/health/ready"
)

// TaskClient is the outbound adapter for a remote task service's MCP
// surface. It implements [ports.TaskAPIClient].
//
// Wire bodies are translated by the [acltask] subpackage and HTTP errors are
// mapped to domain errors by [TranslateHTTPError]. The underlying
// [httpclient.Client] supplies the bearer token, circuit breaking, retry,
// rate limiting and tracing.
type TaskClient struct {
	req *Requester
}

// NewTaskClient creates a TaskClient that sends requests through client.
func NewTaskClient(client *httpclient.Client, logger *slog.Logger) *TaskClient {
	return &TaskClient{req: NewRequester(client, logger)}
}

// Schema fetches the remote Task JSON schema from GET /mcp/schema-tasks.
func (c *TaskClient) Schema(ctx context.Context) (map[string]any, error) {
	var schema map[string]any
	if err := c.req.Do(ctx, http.MethodGet, pathSchema, http.StatusOK, nil, &schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// InsertTasks posts one batch to POST /mcp/tasks. The remote inserts the
// batch atomically, so an error means none of it was persisted.
func (c *TaskClient) InsertTasks(ctx context.Context, tasks []task.Task) ([]task.Task, error) {
	var saved []acltask.TaskDTO
	body := acltask.ToTaskRequests(tasks)
	if err := c.req.Do(ctx, http.MethodPost, pathTasks, http.StatusOK, body, &saved); err != nil {
		return nil, err
	}
	return acltask.ToDomainTaskList(saved), nil
}

// Summary fetches remote counts from GET /mcp/tasks-summary.
func (c *TaskClient) Summary(ctx context.Context) (*task.Summary, error) {
	var dto acltask.SummaryDTO
	if err := c.req.Do(ctx, http.MethodGet, pathSummary, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	s := acltask.ToDomainSummary(dto)
	return &s, nil
}

// Generate asks the remote to synthesize count tasks via POST /mcp/generate.
func (c *TaskClient) Generate(ctx context.Context, count int) ([]task.Task, error) {
	var saved []acltask.TaskDTO
	path := fmt.Sprintf("%s?count=%d", pathGen, count)
	if err := c.req.Do(ctx, http.MethodPost, path, http.StatusOK, nil, &saved); err != nil {
		return nil, err
	}
	return acltask.ToDomainTaskList(saved), nil
}

// Help fetches the remote capability listing from GET /mcp/help.
func (c *TaskClient) Help(ctx context.Context) ([]ports.HelpEntry, error) {
	var dto acltask.HelpDTO
	if err := c.req.Do(ctx, http.MethodGet, pathHelp, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return acltask.ToHelpEntries(dto), nil
}

// Ping checks GET /health/ready. A 503 maps to domain.ErrUnavailable.
func (c *TaskClient) Ping(ctx context.Context) error {
	return c.req.Do(ctx, http.MethodGet, pathReady, http.StatusOK, nil, nil)
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *TaskClient) Name() string {
	return "task-api"
}

// HealthCheck reports the remote's availability from the circuit breaker
// state. No network call is made.
func (c *TaskClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
