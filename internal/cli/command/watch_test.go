package command

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/yndnr/snaptree-go/internal/cli/output"
	"github.com/yndnr/snaptree-go/internal/config"
	"github.com/yndnr/snaptree-go/internal/telemetry/logger"
)

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

const smallFixture = `
root: host
nodes:
  - {id: host, kind: HostRoot, child: app}
  - {id: app, kind: FunctionComponent, type: {name: %s}, child: div}
  - {id: div, kind: HostComponent, element: {tag: div}}
`

func fixtureNamed(name string) string {
	return strings.Replace(smallFixture, "%s", name, 1)
}

func newTestSession(t *testing.T, cfg *config.Config, fixturePath, configPath string, out io.Writer) *watchSession {
	t.Helper()
	cfg.Watch.MinInterval = time.Millisecond
	s, err := newWatchSession(cfg, fixturePath, configPath, out, &output.JSONFormatter{}, logger.Discard())
	if err != nil {
		t.Fatalf("newWatchSession: %v", err)
	}
	return s
}

func TestWatchSession_Rebuild(t *testing.T) {
	path := writeTemp(t, "app.yaml", fixtureNamed("First"))
	out := &syncBuffer{}
	s := newTestSession(t, config.Default(), path, "", out)

	if err := s.rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if !strings.Contains(out.String(), `"First"`) {
		t.Errorf("output = %s", out.String())
	}
	if s.store.Generation() != 1 {
		t.Errorf("generation = %d, want 1", s.store.Generation())
	}
}

func TestWatchSession_RunRebuildsOnChange(t *testing.T) {
	path := writeTemp(t, "app.yaml", fixtureNamed("First"))
	out := &syncBuffer{}
	s := newTestSession(t, config.Default(), path, "", out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.run(ctx)

	if err := os.WriteFile(path, []byte(fixtureNamed("Second")), 0o600); err != nil {
		t.Fatal(err)
	}
	s.notify(path)
	waitFor(t, "second build", func() bool { return strings.Contains(out.String(), `"Second"`) })
}

func TestWatchSession_ReloadsConfig(t *testing.T) {
	fixturePath := writeTemp(t, "app.yaml", fixtureNamed("App"))
	configPath := writeTemp(t, "snaptree.yaml", "snapshot:\n  tag_prefix: first\nwatch:\n  min_interval: 1ms\n")
	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	out := &syncBuffer{}
	s := newTestSession(t, cfg, fixturePath, configPath, out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.run(ctx)

	if err := os.WriteFile(configPath, []byte("snapshot:\n  tag_prefix: second\nwatch:\n  min_interval: 1ms\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s.notify(configPath)
	waitFor(t, "rebuild with new prefix", func() bool { return strings.Contains(out.String(), `"second0"`) })

	// An invalid configuration keeps the previous one.
	if err := os.WriteFile(configPath, []byte("snapshot:\n  max_depth: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s.notify(configPath)
	waitFor(t, "rebuild after rejected reload", func() bool {
		return strings.Count(out.String(), `"second0"`) == 2
	})
}

func TestWatchSession_Metrics(t *testing.T) {
	path := writeTemp(t, "app.yaml", fixtureNamed("App"))
	s := newTestSession(t, config.Default(), path, "", io.Discard)
	if err := s.rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	srv := httptest.NewServer(metricsMux(s.metrics))
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	for _, want := range []string{
		`snaptree_builds_total{result="ok"} 1`,
		"snaptree_records_generation 1",
		"snaptree_records_stored 0",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestWatchSession_CanceledRebuild(t *testing.T) {
	path := writeTemp(t, "app.yaml", fixtureNamed("App"))
	s := newTestSession(t, config.Default(), path, "", io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.rebuild(ctx); err == nil {
		t.Error("rebuild with a canceled context should fail")
	}
}
