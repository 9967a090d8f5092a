package tracker

import (
  "context"
  "fmt"
  "time"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/tourwatch/internal/models"
  "github.com/ushakovn/tourwatch/pkg/metrics"
)

const (
  tickChanged    = "changed"
  tickUnchanged  = "unchanged"
  tickFetchError = "fetch_error"
  tickEmpty      = "empty"
  tickPanic      = "panic"
)

func (t *Tracker) run(ctx context.Context, session *models.MonitoringSession) {
  defer t.wg.Done()

  metrics.MonitorSessions.Inc()
  defer metrics.MonitorSessions.Dec()

  logger := log.
    WithField("chat_id", session.ChatId).
    WithField("session_id", session.ID)

  logger.Info("monitoring loop started")
  defer logger.Info("monitoring loop finished")

  delay := t.config.InitialDelay

  for {
    if !sleep(ctx, delay) {
      return
    }
    // Единственная точка отмены: загрузка уже не прерывается.
    if !t.deps.Sessions.IsActive(session) {
      return
    }

    next, stop := t.tick(ctx, session, delay)
    if stop {
      return
    }
    delay = next
  }
}

func (t *Tracker) tick(ctx context.Context, session *models.MonitoringSession, delay time.Duration) (next time.Duration, stop bool) {
  next = delay

  defer func() {
    if r := recover(); r != nil {
      metrics.ObserveTick(tickPanic)

      log.
        WithField("chat_id", session.ChatId).
        WithField("session_id", session.ID).
        Errorf("tracker.tick: panic recovered: %v", r)

      t.notify(ctx, session, fmt.Sprintf("❌ Ошибка при мониторинге: %v", r))

      next, stop = delay, false
    }
  }()

  t.notify(ctx, session, fmt.Sprintf("🔍 Проверка обновлений\n⏰ %s", time.Now().Format("15:04")))

  snapshot, err := t.deps.Poller.Poll(ctx, session.URL)
  if err != nil {
    metrics.ObserveTick(tickFetchError)

    log.
      WithField("chat_id", session.ChatId).
      WithField("url", session.URL).
      Errorf("t.deps.Poller.Poll: %v", err)

    t.notify(ctx, session, "❌ Ошибка при мониторинге: "+models.FetchErrorText(err))

    return delay, false
  }

  if snapshot.IsEmpty() {
    metrics.ObserveTick(tickEmpty)

    t.notify(ctx, session, "📭 Туры больше не найдены\n\nМониторинг остановлен.")
    t.deps.Sessions.RemoveMonitoring(session)

    return delay, true
  }

  changes := models.NewSnapshotDiff(session.Snapshot(), snapshot)

  if len(changes) > 0 {
    metrics.ObserveTick(tickChanged)

    result := models.Sendable(session.ChatId).
      SetChanges(changes).
      BuildChangesMessage()

    if err = t.deps.Notifier.Notify(ctx, result.Message); err != nil {
      log.
        WithField("chat_id", session.ChatId).
        Errorf("t.deps.Notifier.Notify: %v", err)
    }

    session.SetSnapshot(snapshot)

    return t.config.InitialDelay, false
  }

  metrics.ObserveTick(tickUnchanged)

  t.notify(ctx, session, fmt.Sprintf("ℹ️ Изменений не обнаружено\nСледующая проверка через %d мин.", int(delay.Minutes())))

  return NextDelay(delay, t.config), false
}

func (t *Tracker) notify(ctx context.Context, session *models.MonitoringSession, text string) {
  result := models.Sendable(session.ChatId).BuildNoticeMessage(text)

  if err := t.deps.Notifier.Notify(ctx, result.Message); err != nil {
    log.
      WithField("chat_id", session.ChatId).
      Errorf("t.deps.Notifier.Notify: %v", err)
  }
}

func sleep(ctx context.Context, delay time.Duration) bool {
  timer := time.NewTimer(delay)
  defer timer.Stop()

  select {
  case <-ctx.Done():
    return false
  case <-timer.C:
    return true
  }
}
