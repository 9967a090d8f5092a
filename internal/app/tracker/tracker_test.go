package tracker_test

import (
  "context"
  "errors"
  "strings"
  "sync"
  "testing"
  "time"

  "github.com/ushakovn/tourwatch/internal/app/tracker"
  "github.com/ushakovn/tourwatch/internal/models"
)

// ---- fakes ----

type pollResult struct {
  snapshot models.Snapshot
  err      error
  panic    bool
}

type fakePoller struct {
  mu      sync.Mutex
  results []pollResult
  times   []time.Time
}

func (p *fakePoller) Poll(_ context.Context, _ string) (models.Snapshot, error) {
  p.mu.Lock()
  p.times = append(p.times, time.Now())

  result := p.results[0]
  if len(p.results) > 1 {
    p.results = p.results[1:]
  }
  p.mu.Unlock()

  if result.panic {
    panic("unexpected payload")
  }
  return result.snapshot, result.err
}

func (p *fakePoller) calls() []time.Time {
  p.mu.Lock()
  defer p.mu.Unlock()

  return append([]time.Time(nil), p.times...)
}

type fakeNotifier struct {
  mu       sync.Mutex
  messages []models.SendableMessage
}

func (n *fakeNotifier) Notify(_ context.Context, message models.SendableMessage) error {
  n.mu.Lock()
  defer n.mu.Unlock()

  n.messages = append(n.messages, message)
  return nil
}

func (n *fakeNotifier) contains(substr string) bool {
  n.mu.Lock()
  defer n.mu.Unlock()

  for _, message := range n.messages {
    if strings.Contains(message.Text.Value, substr) {
      return true
    }
  }
  return false
}

type fakeSessions struct {
  mu      sync.Mutex
  active  bool
  removed int
}

func (s *fakeSessions) IsActive(session *models.MonitoringSession) bool {
  s.mu.Lock()
  defer s.mu.Unlock()

  return s.active && !session.IsStopped()
}

func (s *fakeSessions) RemoveMonitoring(session *models.MonitoringSession) bool {
  s.mu.Lock()
  defer s.mu.Unlock()

  session.Stop()
  s.removed++
  s.active = false

  return true
}

func (s *fakeSessions) removedCount() int {
  s.mu.Lock()
  defer s.mu.Unlock()

  return s.removed
}

// ---- helpers ----

var baseSnapshot = models.Snapshot{
  "1": {Name: "Rixos", MinPrice: 100000, ToursCount: 2},
}

func newSession() *models.MonitoringSession {
  return models.NewMonitoringSession(models.SearchRecord{
    URL:      "https://example.com/tours",
    ChatId:   42,
    Snapshot: baseSnapshot,
    IsUsable: true,
  })
}

func newTracker(t *testing.T, poller *fakePoller, notifier *fakeNotifier, sessions *fakeSessions) *tracker.Tracker {
  t.Helper()

  tr := tracker.NewTracker(
    tracker.Config{
      InitialDelay: 10 * time.Millisecond,
      MaxDelay:     40 * time.Millisecond,
      Factor:       2,
    },
    tracker.Dependencies{
      Poller:   poller,
      Notifier: notifier,
      Sessions: sessions,
    },
  )
  tr.Start(context.Background())
  t.Cleanup(tr.Stop)

  return tr
}

func waitFor(t *testing.T, cond func() bool) {
  t.Helper()

  deadline := time.Now().Add(2 * time.Second)

  for time.Now().Before(deadline) {
    if cond() {
      return
    }
    time.Sleep(5 * time.Millisecond)
  }
  t.Fatalf("condition not met in time")
}

// ---- tests ----

func TestNextDelay(t *testing.T) {
  config := tracker.Config{
    InitialDelay: tracker.DefaultInitialDelay,
    MaxDelay:     tracker.DefaultMaxDelay,
    Factor:       tracker.DefaultFactor,
  }

  want := []time.Duration{
    900 * time.Second,
    1350 * time.Second,
    2025 * time.Second,
    3037500 * time.Millisecond,
    3600 * time.Second,
    3600 * time.Second,
  }

  delay := config.InitialDelay

  for i, w := range want {
    delay = tracker.NextDelay(delay, config)
    if delay != w {
      t.Fatalf("step %d: got %s, want %s", i, delay, w)
    }
  }
}

func TestTracker_LaunchNotStarted(t *testing.T) {
  tr := tracker.NewTracker(tracker.Config{}, tracker.Dependencies{})

  if err := tr.Launch(newSession()); !errors.Is(err, tracker.ErrNotStarted) {
    t.Fatalf("expected ErrNotStarted, got %v", err)
  }
}

func TestTracker_Backoff(t *testing.T) {
  poller := &fakePoller{results: []pollResult{{snapshot: baseSnapshot}}}
  notifier := &fakeNotifier{}
  sessions := &fakeSessions{active: true}

  tr := newTracker(t, poller, notifier, sessions)

  if err := tr.Launch(newSession()); err != nil {
    t.Fatalf("unexpected err: %v", err)
  }

  waitFor(t, func() bool { return len(poller.calls()) >= 4 })

  calls := poller.calls()

  if gap := calls[1].Sub(calls[0]); gap < 20*time.Millisecond {
    t.Fatalf("second delay must grow: %s", gap)
  }
  if gap := calls[2].Sub(calls[1]); gap < 40*time.Millisecond {
    t.Fatalf("third delay must grow: %s", gap)
  }
  if !notifier.contains("Изменений не обнаружено") || !notifier.contains("Проверка обновлений") {
    t.Fatalf("expected tick notices")
  }
}

func TestTracker_DelayAfterErrorAndChange(t *testing.T) {
  changed := models.Snapshot{
    "1": {Name: "Rixos", MinPrice: 80000, ToursCount: 2},
  }
  fetchErr := models.NewFetchError("fetch", context.DeadlineExceeded)

  poller := &fakePoller{results: []pollResult{
    {snapshot: baseSnapshot},
    {err: fetchErr},
    {snapshot: changed},
    {snapshot: changed},
  }}
  sessions := &fakeSessions{active: true}

  tr := tracker.NewTracker(
    tracker.Config{
      InitialDelay: 40 * time.Millisecond,
      MaxDelay:     time.Second,
      Factor:       2,
    },
    tracker.Dependencies{Poller: poller, Notifier: &fakeNotifier{}, Sessions: sessions},
  )
  tr.Start(context.Background())
  t.Cleanup(tr.Stop)

  if err := tr.Launch(newSession()); err != nil {
    t.Fatalf("unexpected err: %v", err)
  }

  waitFor(t, func() bool { return len(poller.calls()) >= 5 })

  calls := poller.calls()

  gaps := make([]time.Duration, 0, 4)
  for i := 1; i < 5; i++ {
    gaps = append(gaps, calls[i].Sub(calls[i-1]))
  }

  // без изменений: 40 -> 80
  if gaps[0] < 75*time.Millisecond {
    t.Fatalf("delay must grow after unchanged tick: %v", gaps)
  }
  // ошибка загрузки оставляет 80
  if gaps[1] < 75*time.Millisecond || gaps[1] > 150*time.Millisecond {
    t.Fatalf("delay must stay the same after fetch error: %v", gaps)
  }
  // изменения сбрасывают до 40
  if gaps[2] < 35*time.Millisecond || gaps[2] > gaps[1]-20*time.Millisecond {
    t.Fatalf("delay must reset after changes: %v", gaps)
  }
  if gaps[3] < 75*time.Millisecond {
    t.Fatalf("delay must grow again after reset: %v", gaps)
  }
}

func TestTracker_ChangesUpdateSnapshot(t *testing.T) {
  changed := models.Snapshot{
    "1": {Name: "Rixos", MinPrice: 80000, ToursCount: 2},
  }

  poller := &fakePoller{results: []pollResult{{snapshot: changed}}}
  notifier := &fakeNotifier{}
  sessions := &fakeSessions{active: true}

  tr := newTracker(t, poller, notifier, sessions)
  session := newSession()

  if err := tr.Launch(session); err != nil {
    t.Fatalf("unexpected err: %v", err)
  }

  waitFor(t, func() bool { return notifier.contains("Понижение цены") })
  waitFor(t, func() bool { return session.Snapshot()["1"].MinPrice == 80000 })
  waitFor(t, func() bool { return notifier.contains("Изменений не обнаружено") })
}

func TestTracker_AutoStopOnEmpty(t *testing.T) {
  poller := &fakePoller{results: []pollResult{{snapshot: models.Snapshot{}}}}
  notifier := &fakeNotifier{}
  sessions := &fakeSessions{active: true}

  tr := newTracker(t, poller, notifier, sessions)
  session := newSession()

  if err := tr.Launch(session); err != nil {
    t.Fatalf("unexpected err: %v", err)
  }

  waitFor(t, func() bool { return sessions.removedCount() == 1 })

  if !notifier.contains("Туры больше не найдены") {
    t.Fatalf("expected stop notice")
  }

  time.Sleep(50 * time.Millisecond)

  if calls := len(poller.calls()); calls != 1 {
    t.Fatalf("loop must stop after empty snapshot, polls: %d", calls)
  }
  if !session.IsStopped() {
    t.Fatalf("session must be stopped")
  }
}

func TestTracker_FetchErrorContinues(t *testing.T) {
  fetchErr := models.NewFetchError("fetch", context.DeadlineExceeded)

  poller := &fakePoller{results: []pollResult{
    {err: fetchErr},
    {snapshot: baseSnapshot},
  }}
  notifier := &fakeNotifier{}
  sessions := &fakeSessions{active: true}

  tr := newTracker(t, poller, notifier, sessions)

  if err := tr.Launch(newSession()); err != nil {
    t.Fatalf("unexpected err: %v", err)
  }

  waitFor(t, func() bool { return len(poller.calls()) >= 2 })

  if !notifier.contains("❌ Ошибка при мониторинге: Таймаут при загрузке страницы") {
    t.Fatalf("expected fetch error notice")
  }
  if sessions.removedCount() != 0 {
    t.Fatalf("fetch error must not stop monitoring")
  }
}

func TestTracker_PanicRecovered(t *testing.T) {
  poller := &fakePoller{results: []pollResult{
    {panic: true},
    {snapshot: baseSnapshot},
  }}
  notifier := &fakeNotifier{}
  sessions := &fakeSessions{active: true}

  tr := newTracker(t, poller, notifier, sessions)

  if err := tr.Launch(newSession()); err != nil {
    t.Fatalf("unexpected err: %v", err)
  }

  waitFor(t, func() bool { return len(poller.calls()) >= 2 })

  if !notifier.contains("❌ Ошибка при мониторинге: unexpected payload") {
    t.Fatalf("expected panic notice")
  }
}

func TestTracker_StopSignal(t *testing.T) {
  poller := &fakePoller{results: []pollResult{{snapshot: baseSnapshot}}}
  notifier := &fakeNotifier{}
  sessions := &fakeSessions{active: true}

  tr := newTracker(t, poller, notifier, sessions)
  session := newSession()
  session.Stop()

  if err := tr.Launch(session); err != nil {
    t.Fatalf("unexpected err: %v", err)
  }

  time.Sleep(50 * time.Millisecond)

  if calls := len(poller.calls()); calls != 0 {
    t.Fatalf("stopped session must not poll, polls: %d", calls)
  }
}

func TestTracker_StopWaitsLoops(t *testing.T) {
  poller := &fakePoller{results: []pollResult{{snapshot: baseSnapshot}}}
  sessions := &fakeSessions{active: true}

  tr := tracker.NewTracker(
    tracker.Config{InitialDelay: time.Hour},
    tracker.Dependencies{Poller: poller, Notifier: &fakeNotifier{}, Sessions: sessions},
  )
  tr.Start(context.Background())

  if err := tr.Launch(newSession()); err != nil {
    t.Fatalf("unexpected err: %v", err)
  }

  done := make(chan struct{})
  go func() {
    tr.Stop()
    close(done)
  }()

  select {
  case <-done:
  case <-time.After(time.Second):
    t.Fatalf("Stop must cancel sleeping loops")
  }

  if err := tr.Launch(newSession()); !errors.Is(err, tracker.ErrNotStarted) {
    t.Fatalf("expected ErrNotStarted after stop, got %v", err)
  }
}
