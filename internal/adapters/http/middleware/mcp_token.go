package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/task-service/internal/adapters/http/dto"
)

// Messages of the 401 responses written by MCPToken.
const (
	MsgTokenNotConfigured = "MCP_TOKEN is not configured"
	MsgTokenInvalid       = "Missing or invalid bearer token"
)

const bearerScheme = "bearer"

// MCPToken returns middleware that admits a request only if it carries
// "Authorization: Bearer <token>" matching the configured shared secret.
//
// With an empty token every request is rejected unless allowUnconfigured is
// set, in which case the gate is open (development mode). Rejections are
// written as 401 before the wrapped handler runs.
func MCPToken(token string, allowUnconfigured bool) func(http.Handler) http.Handler {
	want := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(want) == 0 {
				if allowUnconfigured {
					next.ServeHTTP(w, r)
					return
				}
				dto.WriteUnauthorized(w, r, MsgTokenNotConfigured)
				return
			}

			got, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				dto.WriteUnauthorized(w, r, MsgTokenInvalid)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the credential of a Bearer authorization header. The
// scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, cred, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	cred = strings.TrimSpace(cred)
	return cred, cred != ""
}
