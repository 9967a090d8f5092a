package metrics

import (
  "context"
  "errors"
  "net/http"
  "time"

  "github.com/prometheus/client_golang/prometheus"
  "github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
  FetchRequests = prometheus.NewCounterVec(
    prometheus.CounterOpts{Namespace: "tourwatch", Name: "fetch_requests_total", Help: "Page fetches."},
    []string{"mode", "status"},
  )
  FetchLatency = prometheus.NewHistogramVec(
    prometheus.HistogramOpts{
      Namespace: "tourwatch", Name: "fetch_duration_seconds",
      Help:    "Page fetch duration seconds.",
      Buckets: prometheus.DefBuckets,
    },
    []string{"mode"},
  )
  Searches = prometheus.NewCounterVec(
    prometheus.CounterOpts{Namespace: "tourwatch", Name: "searches_total", Help: "Foreground searches."},
    []string{"outcome"}, // outcome: hotels|empty|fetch_error|parse_error
  )
  WizardInputs = prometheus.NewCounterVec(
    prometheus.CounterOpts{Namespace: "tourwatch", Name: "wizard_inputs_total", Help: "Wizard inputs by step."},
    []string{"step", "result"},
  )
  MonitorTicks = prometheus.NewCounterVec(
    prometheus.CounterOpts{Namespace: "tourwatch", Name: "monitor_ticks_total", Help: "Monitoring ticks."},
    []string{"outcome"},
  )
  MonitorSessions = prometheus.NewGauge(
    prometheus.GaugeOpts{Namespace: "tourwatch", Name: "monitor_sessions", Help: "Running monitoring loops."},
  )
)

func InitRegistry() *prometheus.Registry {
  reg := prometheus.NewRegistry()
  reg.MustRegister(FetchRequests, FetchLatency, Searches, WizardInputs, MonitorTicks, MonitorSessions)
  return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
  return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveFetch(mode string, err error, dur time.Duration) {
  FetchRequests.WithLabelValues(mode, LabelErr(err)).Inc()
  FetchLatency.WithLabelValues(mode).Observe(dur.Seconds())
}

func ObserveSearch(outcome string) {
  Searches.WithLabelValues(outcome).Inc()
}

func ObserveWizard(step string, accepted bool) {
  result := "rejected"
  if accepted {
    result = "accepted"
  }
  WizardInputs.WithLabelValues(step, result).Inc()
}

func ObserveTick(outcome string) {
  MonitorTicks.WithLabelValues(outcome).Inc()
}

func LabelErr(err error) string {
  if err == nil {
    return "ok"
  }
  if errors.Is(err, context.DeadlineExceeded) {
    return "timeout"
  }
  return "error"
}
