package command

import (
	"log/slog"

	"github.com/jsamuelsen11/task-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/task-service/internal/platform/config"
	"github.com/jsamuelsen11/task-service/internal/platform/httpclient"
)

// ServiceName identifies the remote in client traces, metrics and health.
const ServiceName = "task-api"

// NewHTTPClient builds the production Client: the ACL task client on top of
// the resilient HTTP client configured by cfg.Client.
func NewHTTPClient(cfg *config.Config, token string, logger *slog.Logger) Client {
	hc := httpclient.New(&cfg.Client, ServiceName, nil, logger, httpclient.WithBearerToken(token))
	return acl.NewTaskClient(hc, logger)
}
