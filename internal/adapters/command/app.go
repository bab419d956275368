// Package command builds the taskctl command-line application: a client of
// the task service's /mcp surface that fetches the schema, bulk-loads
// generated tasks in concurrent batches, triggers server-side generation and
// prints summaries.
package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/jsamuelsen11/task-service/internal/app"
	"github.com/jsamuelsen11/task-service/internal/app/fanout"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/platform/config"
	"github.com/jsamuelsen11/task-service/internal/platform/health"
	"github.com/jsamuelsen11/task-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

// Environment variables bound to the global flags.
const (
	EnvBaseURL = "TASKCTL_BASE_URL"
	EnvToken   = "MCP_TOKEN"
	EnvProfile = "APP_PROFILE"
)

const (
	defaultProfile     = "local"
	defaultLoadCount   = 100
	defaultBatchSize   = 100
	defaultConcurrency = 4
	defaultGenCount    = 10
)

// Client is what taskctl needs from the remote: the MCP operations plus the
// circuit breaker state reported through HealthCheck.
type Client interface {
	ports.TaskAPIClient
	ports.HealthChecker
}

// Deps lets tests replace config loading, the remote client and the sample
// source. Nil fields fall back to the production implementations.
type Deps struct {
	LoadConfig func(profile string) (*config.Config, error)
	NewClient  func(cfg *config.Config, token string, logger *slog.Logger) Client
	Samples    *app.SampleFactory
	Out        io.Writer
	Logger     *slog.Logger
	Now        func() time.Time
}

// BuildApp assembles the taskctl application.
func BuildApp(deps Deps) *cli.App {
	deps = withDefaults(deps)

	return &cli.App{
		Name:      "taskctl",
		Usage:     "drive the task service MCP surface",
		Writer:    deps.Out,
		ErrWriter: deps.Out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "task service root URL (overrides client.base_url)",
				EnvVars: []string{EnvBaseURL},
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "bearer token for /mcp (overrides mcp.token)",
				EnvVars: []string{EnvToken},
			},
			&cli.StringFlag{
				Name:    "profile",
				Usage:   "configuration profile",
				Value:   defaultProfile,
				EnvVars: []string{EnvProfile},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "schema",
				Usage: "print the Task JSON schema",
				Action: func(c *cli.Context) error {
					client, err := newClient(c, deps)
					if err != nil {
						return err
					}
					schema, err := client.Schema(c.Context)
					if err != nil {
						return fmt.Errorf("fetching schema: %w", err)
					}
					return printJSON(deps.Out, schema)
				},
			},
			{
				Name:  "load",
				Usage: "generate tasks locally and insert them in concurrent batches",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Value: defaultLoadCount, Usage: "number of tasks to generate"},
					&cli.IntFlag{Name: "batch-size", Value: defaultBatchSize, Usage: "tasks per request (max 1000)"},
					&cli.IntFlag{Name: "concurrency", Value: defaultConcurrency, Usage: "requests in flight"},
				},
				Action: func(c *cli.Context) error {
					client, err := newClient(c, deps)
					if err != nil {
						return err
					}
					return runLoad(c.Context, deps, client, loadOptions{
						count:       c.Int("count"),
						batchSize:   c.Int("batch-size"),
						concurrency: c.Int("concurrency"),
					})
				},
			},
			{
				Name:  "generate",
				Usage: "ask the server to generate and insert random tasks",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Value: defaultGenCount, Usage: "number of tasks (1..1000)"},
				},
				Action: func(c *cli.Context) error {
					client, err := newClient(c, deps)
					if err != nil {
						return err
					}
					saved, err := client.Generate(c.Context, c.Int("count"))
					if err != nil {
						return fmt.Errorf("generating tasks: %w", err)
					}
					_, err = fmt.Fprintf(deps.Out, "generated %d tasks\n", len(saved))
					return err
				},
			},
			{
				Name:  "summary",
				Usage: "print task counts per status",
				Action: func(c *cli.Context) error {
					client, err := newClient(c, deps)
					if err != nil {
						return err
					}
					s, err := client.Summary(c.Context)
					if err != nil {
						return fmt.Errorf("fetching summary: %w", err)
					}
					return printSummary(deps.Out, s)
				},
			},
			{
				Name:  "help",
				Usage: "print the server's MCP capability listing",
				Action: func(c *cli.Context) error {
					client, err := newClient(c, deps)
					if err != nil {
						return err
					}
					entries, err := client.Help(c.Context)
					if err != nil {
						return fmt.Errorf("fetching help: %w", err)
					}
					for _, e := range entries {
						if _, err := fmt.Fprintf(deps.Out, "%-6s %-22s %s\n", e.Method, e.Path, e.Description); err != nil {
							return err
						}
					}
					return nil
				},
			},
			{
				Name:  "ping",
				Usage: "check server readiness and the client circuit breaker",
				Action: func(c *cli.Context) error {
					client, err := newClient(c, deps)
					if err != nil {
						return err
					}
					return runPing(c.Context, deps.Out, client)
				},
			},
		},
	}
}

func withDefaults(deps Deps) Deps {
	if deps.LoadConfig == nil {
		deps.LoadConfig = func(profile string) (*config.Config, error) { return config.Load(profile) }
	}
	if deps.NewClient == nil {
		deps.NewClient = NewHTTPClient
	}
	if deps.Samples == nil {
		deps.Samples = app.NewSampleFactory(0)
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return deps
}

// newClient loads the profile and applies the global flag overrides.
func newClient(c *cli.Context, deps Deps) (Client, error) {
	cfg, err := deps.LoadConfig(c.String("profile"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if u := strings.TrimSpace(c.String("base-url")); u != "" {
		cfg.Client.BaseURL = u
	}
	token := cfg.MCP.Token
	if t := strings.TrimSpace(c.String("token")); t != "" {
		token = t
	}
	return deps.NewClient(cfg, token, deps.Logger), nil
}

type loadOptions struct {
	count       int
	batchSize   int
	concurrency int
}

func (o loadOptions) validate() error {
	var errs []error
	if o.count < 1 {
		errs = append(errs, errors.New("--count must be >= 1"))
	}
	if o.batchSize < 1 || o.batchSize > task.MaxBatchSize {
		errs = append(errs, fmt.Errorf("--batch-size must be between 1 and %d", task.MaxBatchSize))
	}
	if o.concurrency < 1 {
		errs = append(errs, errors.New("--concurrency must be >= 1"))
	}
	return errors.Join(errs...)
}

// runLoad posts the generated tasks batch by batch. Each batch is atomic on
// the server, so the inserted count is exact even when some batches fail.
func runLoad(ctx context.Context, deps Deps, client ports.TaskAPIClient, opts loadOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	runID := uuid.NewString()
	ctx = httpclient.WithCorrelationID(ctx, runID)

	tasks := deps.Samples.Tasks(opts.count, task.DateOf(deps.Now()))
	batches := chunk(tasks, opts.batchSize)

	start := deps.Now()
	results := fanout.Run(ctx, opts.concurrency, batches, client.InsertTasks)

	inserted := 0
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("batch %d: %w", i, r.Err))
			continue
		}
		inserted += len(r.Value)
	}

	deps.Logger.InfoContext(ctx, "load finished",
		slog.String("run_id", runID),
		slog.Int("inserted", inserted),
		slog.Int("batches", len(batches)),
		slog.Int("failed_batches", len(errs)),
		slog.Duration("elapsed", deps.Now().Sub(start)),
	)

	if _, err := fmt.Fprintf(deps.Out, "inserted %d of %d tasks in %d batches (run %s)\n",
		inserted, len(tasks), len(batches), runID); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// chunk splits items into consecutive slices of at most size elements.
func chunk[T any](items []T, size int) [][]T {
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}

// runPing reports remote readiness and the local breaker state. It fails if
// either check fails.
func runPing(ctx context.Context, out io.Writer, client Client) error {
	registry := health.New()
	registry.Register(client)
	registry.Register(remoteReadiness{client: client})

	results := registry.CheckAll(ctx)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		status := "ok"
		if err := results[name]; err != nil {
			status = err.Error()
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		if _, err := fmt.Fprintf(out, "%-10s %s\n", name, status); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}

// remoteReadiness adapts the remote readiness probe to ports.HealthChecker.
type remoteReadiness struct {
	client ports.TaskAPIClient
}

func (remoteReadiness) Name() string { return "server" }

func (r remoteReadiness) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func printSummary(out io.Writer, s *task.Summary) error {
	for _, st := range task.Statuses() {
		if _, err := fmt.Fprintf(out, "%-12s %d\n", st, s.ByStatus[st]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "%-12s %d\n", "TOTAL", s.Total)
	return err
}
