package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/task-service/internal/platform/logging"
)

const redactedValue = "[REDACTED]"

// RedactHeaders renders headers as a "headers" log group with credential
// headers masked. The sensitive set is logging.SensitiveHeaders, the same
// names the log handler masks. Keys are sorted; multi-value headers are
// comma-joined.
func RedactHeaders(headers http.Header) slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]any, 0, len(keys))
	for _, key := range keys {
		val := strings.Join(headers[key], ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			val = redactedValue
		}
		attrs = append(attrs, slog.String(key, val))
	}
	return slog.Group("headers", attrs...)
}
