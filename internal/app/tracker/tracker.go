package tracker

import (
  "context"
  "errors"
  "sync"
  "time"

  "github.com/ushakovn/tourwatch/internal/models"
)

const (
  DefaultInitialDelay = 600 * time.Second
  DefaultMaxDelay     = 3600 * time.Second
  DefaultFactor       = 1.5
)

var ErrNotStarted = errors.New("tracker not started")

type Tracker struct {
  config Config
  deps   Dependencies

  mu     sync.Mutex
  ctx    context.Context
  cancel context.CancelFunc
  wg     sync.WaitGroup
}

type Config struct {
  InitialDelay time.Duration
  MaxDelay     time.Duration
  Factor       float64
}

type Dependencies struct {
  Poller   Poller
  Notifier Notifier
  Sessions Sessions
}

type Poller interface {
  Poll(ctx context.Context, url string) (models.Snapshot, error)
}

type Notifier interface {
  Notify(ctx context.Context, message models.SendableMessage) error
}

type Sessions interface {
  IsActive(session *models.MonitoringSession) bool
  RemoveMonitoring(session *models.MonitoringSession) bool
}

func NewTracker(config Config, deps Dependencies) *Tracker {
  if config.InitialDelay <= 0 {
    config.InitialDelay = DefaultInitialDelay
  }
  if config.MaxDelay <= 0 {
    config.MaxDelay = DefaultMaxDelay
  }
  if config.Factor <= 1 {
    config.Factor = DefaultFactor
  }

  return &Tracker{
    config: config,
    deps:   deps,
  }
}

// NextDelay увеличивает задержку в Factor раз, но не выше MaxDelay.
func NextDelay(delay time.Duration, config Config) time.Duration {
  next := time.Duration(float64(delay) * config.Factor)

  return min(next, config.MaxDelay)
}
