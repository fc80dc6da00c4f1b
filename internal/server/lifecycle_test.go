package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/advgame/internal/observability"
)

type mockService struct {
	started atomic.Bool
	stopped atomic.Bool
	startFn func() error
}

func (m *mockService) Start() error {
	m.started.Store(true)
	if m.startFn != nil {
		return m.startFn()
	}
	// Block until stopped
	for !m.stopped.Load() {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

func (m *mockService) Stop() {
	m.stopped.Store(true)
}

func runAsync(ctx context.Context, lc *Lifecycle) <-chan error {
	done := make(chan error, 1)
	go func() { done <- lc.Run(ctx) }()
	return done
}

func wait(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down in time")
	}
	return nil
}

func TestLifecycle_CancelStopsServices(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	svc1 := &mockService{}
	svc2 := &mockService{}
	lc.Add("svc1", svc1)
	lc.Add("svc2", svc2)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, lc)

	require.Eventually(t, func() bool { return svc1.started.Load() && svc2.started.Load() }, 2*time.Second, 10*time.Millisecond)
	cancel()

	assert.NoError(t, wait(t, done))
	assert.True(t, svc1.stopped.Load())
	assert.True(t, svc2.stopped.Load())
}

func TestLifecycle_FinishedServiceStopsTheRest(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	background := &mockService{}
	game := &mockService{startFn: func() error { return nil }}
	lc.Add("background", background)
	lc.Add("game", game)

	assert.NoError(t, wait(t, runAsync(context.Background(), lc)))
	assert.True(t, background.stopped.Load())
	assert.True(t, game.stopped.Load())
}

func TestLifecycle_MetricsServerStopsWhenConsoleFinishes(t *testing.T) {
	m := observability.NewMetrics("advgame")
	metrics, err := observability.NewMetricsServer("127.0.0.1:0", m, zap.NewNop())
	require.NoError(t, err)
	addr := metrics.Addr()

	release := make(chan struct{})
	lc := NewLifecycle(zap.NewNop())
	lc.Add("console", &mockService{startFn: func() error { <-release; return nil }})
	lc.Add("metrics", metrics)
	done := runAsync(context.Background(), lc)

	m.RecordCommand("QUIT", observability.ResultAccepted)
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return strings.Contains(string(body), `advgame_commands_total{result="accepted",verb="QUIT"} 1`)
	}, 2*time.Second, 10*time.Millisecond)

	close(release)
	assert.NoError(t, wait(t, done))
	_, err = http.Get("http://" + addr + "/metrics")
	assert.Error(t, err)
}

func TestLifecycle_ReturnsServiceError(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	boom := errors.New("boom")
	lc.Add("game", &mockService{startFn: func() error { return boom }})

	err := wait(t, runAsync(context.Background(), lc))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "service game")
}

func TestFuncService(t *testing.T) {
	started := false
	stopped := false

	svc := &FuncService{
		StartFn: func() error {
			started = true
			return nil
		},
		StopFn: func() {
			stopped = true
		},
	}

	err := svc.Start()
	assert.NoError(t, err)
	assert.True(t, started)

	svc.Stop()
	assert.True(t, stopped)
}
