package probe

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "net/http"
  "time"

  "github.com/go-chi/chi/v5"
  chimw "github.com/go-chi/chi/v5/middleware"
  "github.com/prometheus/client_golang/prometheus"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/tourwatch/pkg/metrics"
)

type Server struct {
  config Config
  deps   Dependencies
  mux    *chi.Mux
  srv    *http.Server
}

type Config struct {
  Addr string
}

type Dependencies struct {
  Registry *prometheus.Registry
  Sessions SessionCounter
}

type SessionCounter interface {
  MonitoringCount() int
}

type healthResponse struct {
  Status             string `json:"status"`
  MonitoringSessions int    `json:"monitoring_sessions"`
}

func NewServer(config Config, deps Dependencies) *Server {
  m := chi.NewRouter()

  m.Use(chimw.RealIP)
  m.Use(chimw.Recoverer)

  s := &Server{
    config: config,
    deps:   deps,
    mux:    m,
  }

  m.Get("/healthz", s.handleHealth)
  m.Handle("/metrics", metrics.Handler(deps.Registry))

  return s
}

func (s *Server) Handler() http.Handler {
  return s.mux
}

// Start поднимает сервер в фоне. Пустой адрес отключает сервер.
func (s *Server) Start() {
  if s.config.Addr == "" {
    log.Info("probe server disabled")
    return
  }

  s.srv = &http.Server{
    Addr:              s.config.Addr,
    Handler:           s.mux,
    ReadHeaderTimeout: 5 * time.Second,
  }

  go func() {
    log.WithField("addr", s.config.Addr).Info("probe server listening")

    if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
      log.Errorf("probe.Server.ListenAndServe: %v", err)
    }
  }()
}

func (s *Server) Shutdown(ctx context.Context) error {
  if s.srv == nil {
    return nil
  }
  if err := s.srv.Shutdown(ctx); err != nil {
    return fmt.Errorf("s.srv.Shutdown: %w", err)
  }
  return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
  resp := healthResponse{Status: "ok"}

  if s.deps.Sessions != nil {
    resp.MonitoringSessions = s.deps.Sessions.MonitoringCount()
  }

  w.Header().Set("Content-Type", "application/json")

  if err := json.NewEncoder(w).Encode(resp); err != nil {
    log.Errorf("json.Encoder.Encode: %v", err)
  }
}
