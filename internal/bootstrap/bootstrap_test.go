package bootstrap

import (
	"context"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"go-leave/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingAudit struct {
	mu      sync.Mutex
	entries []AuditLog
	started chan AuditLog
}

func newRecordingAudit() *recordingAudit {
	return &recordingAudit{started: make(chan AuditLog, 1)}
}

func (r *recordingAudit) Log(_ context.Context, entry AuditLog) {
	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()
	if entry.Action == "SERVER_START" {
		r.started <- entry
	}
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

func TestRunHTTPServer_ServesUntilCancelled(t *testing.T) {
	audit := newRecordingAudit()
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- RunHTTPServer(ctx, handler, ServerConfig{Port: "0", Env: "test", ShutdownTimeout: time.Second}, audit, zap.NewNop())
	}()

	var start AuditLog
	select {
	case start = <-audit.started:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start")
	}

	_, port, err := net.SplitHostPort(start.Meta["addr"].(string))
	require.NoError(t, err)
	assert.Equal(t, "test", start.Meta["env"])

	resp, err := http.Get("http://127.0.0.1:" + port + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{"SERVER_START", "SERVER_SHUTDOWN"}, audit.actions())
}

func TestRunHTTPServer_ListenError(t *testing.T) {
	err := RunHTTPServer(context.Background(), http.NotFoundHandler(), ServerConfig{Port: "not-a-port"}, newRecordingAudit(), nil)
	assert.Error(t, err)
}

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core), "go-leave-api")
	l.now = func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }

	ctx := contextutil.WithRequestID(context.Background(), "req-7")
	l.Log(ctx, AuditLog{Action: "SERVER_SHUTDOWN", Message: "bye", Meta: map[string]any{"env": "test"}})
	l.Log(context.Background(), AuditLog{Action: "SERVER_START", Message: "hi"})

	require.Equal(t, 2, logs.Len())

	first := logs.All()[0]
	assert.Equal(t, "audit", first.LoggerName)
	fields := first.ContextMap()
	assert.Equal(t, "go-leave-api", fields["service"])
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "req-7", fields["request_id"])
	assert.WithinDuration(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), fields["timestamp"].(time.Time), 0)

	second := logs.All()[1].ContextMap()
	assert.NotContains(t, second, "request_id")
	assert.NotContains(t, second, "meta")
}
