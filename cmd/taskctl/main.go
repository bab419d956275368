// Command taskctl drives a running task service through its /mcp surface.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen11/task-service/internal/adapters/command"
	"github.com/jsamuelsen11/task-service/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.New(os.Getenv("TASKCTL_LOG_LEVEL"), logging.FormatText, os.Stderr)
	ctx = logging.WithLogger(ctx, logger)

	app := command.BuildApp(command.Deps{Logger: logger})
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
