// Package mcp exposes the task service's MCP operations as Model Context
// Protocol tools, served over streamable HTTP at /mcp/rpc.
//
// Tool payloads are the same JSON documents the REST /mcp endpoints return,
// carried as text content.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/jsamuelsen11/task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-service/internal/app"
	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

// ServerName is reported to clients during initialization.
const ServerName = "task-service"

// SourceRPC labels tasks ingested through tool calls on the ingest metric.
const SourceRPC = "mcp-rpc"

const defaultGenerateCount = 10

// ToolServer registers the task tools on an MCP server.
type ToolServer struct {
	ingest   ports.BulkIngest
	reporter ports.Reporter
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	srv      *mcpserver.MCPServer
}

// NewToolServer builds the MCP server and registers every tool named by
// reporter.Spec. metrics and logger may be nil.
func NewToolServer(
	ingest ports.BulkIngest,
	reporter ports.Reporter,
	version string,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *ToolServer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &ToolServer{
		ingest:   ingest,
		reporter: reporter,
		metrics:  metrics,
		logger:   logger,
		srv: mcpserver.NewMCPServer(
			ServerName,
			version,
			mcpserver.WithToolCapabilities(false),
			mcpserver.WithRecovery(),
		),
	}

	s.srv.AddTool(mcpgo.NewTool(app.ToolSchemaTasks,
		mcpgo.WithDescription("Returns the JSON-Schema for Task objects"),
	), s.handleSchema)

	s.srv.AddTool(mcpgo.NewTool(app.ToolInsertTasks,
		mcpgo.WithDescription(fmt.Sprintf("Inserts 1 to %d tasks atomically", task.MaxBatchSize)),
		mcpgo.WithArray("tasks",
			mcpgo.Required(),
			mcpgo.Description("Task objects as described by schema_tasks"),
			mcpgo.Items(reporter.TaskSchema()),
		),
	), s.handleInsert)

	s.srv.AddTool(mcpgo.NewTool(app.ToolTasksSummary,
		mcpgo.WithDescription("Returns task counts per status and the total"),
	), s.handleSummary)

	s.srv.AddTool(mcpgo.NewTool(app.ToolGenerateTasks,
		mcpgo.WithDescription(fmt.Sprintf("Generates and inserts sample tasks (max %d)", task.MaxBatchSize)),
		mcpgo.WithNumber("count",
			mcpgo.Description("Number of tasks to generate"),
			mcpgo.DefaultNumber(defaultGenerateCount),
			mcpgo.Min(1),
			mcpgo.Max(task.MaxBatchSize),
		),
	), s.handleGenerate)

	s.srv.AddTool(mcpgo.NewTool(app.ToolHelp,
		mcpgo.WithDescription("Lists the MCP capabilities of this service"),
	), s.handleHelp)

	return s
}

// MCPServer returns the underlying server, mainly for in-process clients.
func (s *ToolServer) MCPServer() *mcpserver.MCPServer {
	return s.srv
}

// Handler returns the streamable HTTP transport. It keeps no session state,
// so any replica can serve any call.
func (s *ToolServer) Handler() http.Handler {
	return mcpserver.NewStreamableHTTPServer(s.srv, mcpserver.WithStateLess(true))
}

func (s *ToolServer) handleSchema(_ context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return jsonResult(s.reporter.TaskSchema())
}

func (s *ToolServer) handleInsert(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	raw, ok := req.GetArguments()["tasks"]
	if !ok {
		return validationResult(domain.NewValidationError("tasks", task.MsgBatchEmpty))
	}

	// Round-trip through JSON so tool arguments get the same decoding and
	// validation as a REST body.
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding tasks argument: %w", err)
	}
	var batch dto.BatchRequest
	if err := json.Unmarshal(b, &batch); err != nil {
		return validationResult(domain.NewValidationError("tasks", "Tasks must be an array of task objects"))
	}
	if err := batch.Validate(); err != nil {
		return validationResult(err)
	}

	saved, err := s.ingest.InsertMany(ctx, batch.ToTasks())
	if err != nil {
		return s.failure(ctx, app.ToolInsertTasks, err)
	}
	s.metrics.RecordIngested(ctx, SourceRPC, len(saved))
	return jsonResult(dto.ToTaskListResponse(saved))
}

func (s *ToolServer) handleSummary(ctx context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	summary, err := s.reporter.Summary(ctx)
	if err != nil {
		return s.failure(ctx, app.ToolTasksSummary, err)
	}
	return jsonResult(dto.ToSummaryResponse(summary))
}

func (s *ToolServer) handleGenerate(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	count := req.GetInt("count", defaultGenerateCount)

	saved, err := s.ingest.GenerateSample(ctx, count)
	if err != nil {
		return s.failure(ctx, app.ToolGenerateTasks, err)
	}
	s.metrics.RecordIngested(ctx, SourceRPC, len(saved))
	return jsonResult(dto.ToTaskListResponse(saved))
}

func (s *ToolServer) handleHelp(_ context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return jsonResult(dto.ToHelpResponse(s.reporter.Help()))
}

// failure turns validation errors into tool errors the caller can act on and
// reports everything else as a protocol error with the cause only logged.
func (s *ToolServer) failure(ctx context.Context, tool string, err error) (*mcpgo.CallToolResult, error) {
	if errors.Is(err, domain.ErrValidation) {
		return validationResult(err)
	}
	s.logger.ErrorContext(ctx, "tool call failed",
		slog.String("tool", tool),
		slog.Any("error", err),
	)
	return nil, fmt.Errorf("%s failed", tool)
}

func jsonResult(v any) (*mcpgo.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding tool result: %w", err)
	}
	return mcpgo.NewToolResultText(string(b)), nil
}

// validationResult renders err as the 400 body REST clients would receive,
// flagged as a tool error.
func validationResult(err error) (*mcpgo.CallToolResult, error) {
	_, body := dto.NewErrorResponse(err)
	b, mErr := json.Marshal(body)
	if mErr != nil {
		return nil, fmt.Errorf("encoding tool error: %w", mErr)
	}
	return mcpgo.NewToolResultError(string(b)), nil
}
