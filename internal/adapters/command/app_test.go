package command

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/task-service/internal/app"
	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/platform/config"
	"github.com/jsamuelsen11/task-service/internal/ports"
	"github.com/jsamuelsen11/task-service/mocks"
)

// fakeClient pairs the generated API mock with a fixed breaker state.
type fakeClient struct {
	*mocks.MockTaskAPIClient
	breakerErr error
}

func (fakeClient) Name() string { return ServiceName }

func (f fakeClient) HealthCheck(context.Context) error { return f.breakerErr }

type harness struct {
	api     *mocks.MockTaskAPIClient
	out     *bytes.Buffer
	gotURL  string
	gotTok  string
	breaker error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{api: mocks.NewMockTaskAPIClient(t), out: &bytes.Buffer{}}
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()

	a := BuildApp(Deps{
		LoadConfig: func(profile string) (*config.Config, error) {
			if profile != "local" {
				t.Errorf("profile = %q, want local", profile)
			}
			return &config.Config{
				Client: config.ClientConfig{BaseURL: "http://from-config:8080"},
				MCP:    config.MCPConfig{Token: "config-token"},
			}, nil
		},
		NewClient: func(cfg *config.Config, token string, _ *slog.Logger) Client {
			h.gotURL = cfg.Client.BaseURL
			h.gotTok = token
			return fakeClient{MockTaskAPIClient: h.api, breakerErr: h.breaker}
		},
		Samples: app.NewSampleFactory(1),
		Out:     h.out,
		Now:     func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) },
	})
	return a.RunContext(context.Background(), append([]string{"taskctl"}, args...))
}

func TestBuildApp_Schema(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.api.EXPECT().Schema(mock.Anything).Return(map[string]any{"title": "Task"}, nil)

	if err := h.run(t, "schema"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(h.out.String(), `"title": "Task"`) {
		t.Errorf("output = %q, want indented schema", h.out.String())
	}
}

func TestBuildApp_ConfigAndFlagOverrides(t *testing.T) {
	t.Parallel()

	t.Run("config values", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		h.api.EXPECT().Generate(mock.Anything, 10).Return([]task.Task{}, nil)

		if err := h.run(t, "generate"); err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if h.gotURL != "http://from-config:8080" {
			t.Errorf("base url = %q, want config value", h.gotURL)
		}
		if h.gotTok != "config-token" {
			t.Errorf("token = %q, want config-token", h.gotTok)
		}
	})

	t.Run("flags win", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		h.api.EXPECT().Generate(mock.Anything, 10).Return([]task.Task{}, nil)

		if err := h.run(t, "--base-url", "http://flag:9000", "--token", "flag-token", "generate"); err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if h.gotURL != "http://flag:9000" {
			t.Errorf("base url = %q, want flag value", h.gotURL)
		}
		if h.gotTok != "flag-token" {
			t.Errorf("token = %q, want flag-token", h.gotTok)
		}
	})
}

func TestBuildApp_Load(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	var calls atomic.Int32
	h.api.EXPECT().InsertTasks(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, batch []task.Task) ([]task.Task, error) {
			calls.Add(1)
			if len(batch) > 10 {
				t.Errorf("batch of %d exceeds batch size", len(batch))
			}
			return batch, nil
		})

	if err := h.run(t, "load", "--count", "25", "--batch-size", "10", "--concurrency", "2"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("InsertTasks calls = %d, want 3", calls.Load())
	}
	if !strings.Contains(h.out.String(), "inserted 25 of 25 tasks in 3 batches") {
		t.Errorf("output = %q", h.out.String())
	}
}

func TestBuildApp_LoadPartialFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.api.EXPECT().InsertTasks(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, batch []task.Task) ([]task.Task, error) {
			if len(batch) < 10 {
				return nil, domain.ErrUnavailable
			}
			return batch, nil
		})

	err := h.run(t, "load", "--count", "25", "--batch-size", "10")

	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
	if !strings.Contains(h.out.String(), "inserted 20 of 25 tasks") {
		t.Errorf("output = %q", h.out.String())
	}
}

func TestBuildApp_LoadRejectsBadOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"zero count", []string{"load", "--count", "0"}},
		{"oversized batch", []string{"load", "--batch-size", "1001"}},
		{"zero concurrency", []string{"load", "--concurrency", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// No expectations: InsertTasks must not be called.
			h := newHarness(t)
			if err := h.run(t, tt.args...); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestBuildApp_Generate(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.api.EXPECT().Generate(mock.Anything, 3).Return(make([]task.Task, 3), nil)

	if err := h.run(t, "generate", "--count", "3"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got := h.out.String(); got != "generated 3 tasks\n" {
		t.Errorf("output = %q", got)
	}
}

func TestBuildApp_Summary(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.api.EXPECT().Summary(mock.Anything).Return(&task.Summary{
		ByStatus: map[task.Status]int64{task.StatusTodo: 2, task.StatusDone: 1},
		Total:    3,
	}, nil)

	if err := h.run(t, "summary"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out := h.out.String()
	for _, want := range []string{"TODO", "IN_PROGRESS", "DONE", "TOTAL"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestBuildApp_Help(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.api.EXPECT().Help(mock.Anything).Return([]ports.HelpEntry{
		{Name: "summary", Method: "GET", Path: "/mcp/tasks-summary", Description: "Counts per status"},
	}, nil)

	if err := h.run(t, "help"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(h.out.String(), "/mcp/tasks-summary") {
		t.Errorf("output = %q", h.out.String())
	}
}

func TestBuildApp_Ping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		breakerErr error
		wantErr    bool
	}{
		{name: "healthy", wantErr: false},
		{name: "server not ready", pingErr: domain.ErrUnavailable, wantErr: true},
		{name: "breaker open", breakerErr: errors.New("task-api: failing (circuit breaker open)"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t)
			h.breaker = tt.breakerErr
			h.api.EXPECT().Ping(mock.Anything).Return(tt.pingErr)

			err := h.run(t, "ping")

			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			out := h.out.String()
			if !strings.Contains(out, "server") || !strings.Contains(out, ServiceName) {
				t.Errorf("output = %q, want both checks listed", out)
			}
		})
	}
}

func TestChunk(t *testing.T) {
	t.Parallel()

	got := chunk([]int{1, 2, 3, 4, 5}, 2)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if len(got[2]) != 1 || got[2][0] != 5 {
		t.Errorf("last chunk = %v, want [5]", got[2])
	}
}
