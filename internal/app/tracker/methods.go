package tracker

import (
  "context"
  "fmt"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/tourwatch/internal/models"
)

func (t *Tracker) Start(ctx context.Context) {
  t.mu.Lock()
  defer t.mu.Unlock()

  t.ctx, t.cancel = context.WithCancel(ctx)

  log.
    WithField("initial_delay", t.config.InitialDelay).
    WithField("max_delay", t.config.MaxDelay).
    Info("tracker started")
}

// Stop отменяет ожидание во всех циклах и дожидается их завершения.
func (t *Tracker) Stop() {
  t.mu.Lock()
  cancel := t.cancel
  t.mu.Unlock()

  if cancel != nil {
    cancel()
  }
  t.wg.Wait()

  log.Info("tracker stopped")
}

// Launch запускает цикл мониторинга сессии.
func (t *Tracker) Launch(session *models.MonitoringSession) error {
  t.mu.Lock()
  defer t.mu.Unlock()

  if t.ctx == nil {
    return ErrNotStarted
  }
  if err := t.ctx.Err(); err != nil {
    return fmt.Errorf("%w: %v", ErrNotStarted, err)
  }

  t.wg.Add(1)

  go t.run(t.ctx, session)

  return nil
}
