package client

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Nigam11/skillhub-front/internal/client/credential"
	"github.com/Nigam11/skillhub-front/internal/common"
	"github.com/Nigam11/skillhub-front/internal/logging"
)

type anonymousKey struct{}

// withoutCredential marks ctx so the bearer transport leaves the request
// unauthenticated. Used for the login, signup and password-reset endpoints.
func withoutCredential(ctx context.Context) context.Context {
	return context.WithValue(ctx, anonymousKey{}, true)
}

func isAnonymous(ctx context.Context) bool {
	v, _ := ctx.Value(anonymousKey{}).(bool)
	return v
}

// bearerTransport attaches the session credential and a request id to every
// outgoing request, and reports rejected credentials.
type bearerTransport struct {
	next http.RoundTripper
	log  logging.Logger

	mu             sync.RWMutex
	tokens         TokenSource
	onUnauthorized UnauthorizedFunc
}

func (t *bearerTransport) bind(tokens TokenSource, onUnauthorized UnauthorizedFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tokens = tokens
	t.onUnauthorized = onUnauthorized
}

func (t *bearerTransport) token(ctx context.Context) string {
	if isAnonymous(ctx) {
		return ""
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.tokens == nil {
		return ""
	}
	tok := strings.TrimSpace(t.tokens.Token())
	if !credential.Present(tok) {
		return ""
	}
	return tok
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	r := req.Clone(ctx)

	requestID := uuid.NewString()
	r.Header.Set(common.RequestIDHeaderName, requestID)

	tok := t.token(ctx)
	if tok != "" {
		r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	} else {
		r.Header.Del(common.AuthorizationHeaderName)
	}

	start := time.Now()
	resp, err := t.next.RoundTrip(r)
	if err != nil {
		t.log.Debug(ctx, "request failed",
			"method", r.Method, "path", r.URL.Path, "request_id", requestID, "error", err)
		return nil, err
	}

	t.log.Debug(ctx, "request done",
		"method", r.Method, "path", r.URL.Path, "status", resp.StatusCode,
		"request_id", requestID, "duration", time.Since(start))

	if tok != "" && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		t.mu.RLock()
		hook := t.onUnauthorized
		t.mu.RUnlock()
		if hook != nil {
			hook(ctx, tok)
		}
	}

	return resp, nil
}
