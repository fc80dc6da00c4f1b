package observability

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Handler serves the registry in the prometheus exposition format.
//
// Precondition: m is non-nil.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// MetricsServer exposes a Metrics registry at /metrics for scraping.
type MetricsServer struct {
	srv    *http.Server
	ln     net.Listener
	logger *zap.Logger
}

// NewMetricsServer binds addr and routes /metrics to m. Binding up front
// reports a taken port before the game starts.
//
// Precondition: m and logger are non-nil.
// Postcondition: returns a server listening on addr, or a non-nil error.
func NewMetricsServer(addr string, m *Metrics, logger *zap.Logger) (*MetricsServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener on %s: %w", addr, err)
	}
	r := chi.NewRouter()
	r.Handle("/metrics", m.Handler())
	return &MetricsServer{
		srv:    &http.Server{Handler: r, ReadHeaderTimeout: 5 * time.Second},
		ln:     ln,
		logger: logger,
	}, nil
}

// Addr returns the bound address, which differs from the requested one
// when port 0 was asked for.
func (s *MetricsServer) Addr() string { return s.ln.Addr().String() }

// Start serves until Stop is called.
//
// Postcondition: returns nil after Stop, or the serve error.
func (s *MetricsServer) Start() error {
	s.logger.Info("serving metrics", zap.String("addr", s.Addr()))
	if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight scrapes and closes the listener.
func (s *MetricsServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("metrics server shutdown", zap.Error(err))
	}
	// Serve closes the listener itself; this covers a server never started.
	_ = s.ln.Close()
}
