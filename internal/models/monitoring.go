package models

import (
  "sync"
  "time"

  "github.com/google/uuid"
)

// SearchRecord последний успешный поиск пользователя.
type SearchRecord struct {
  URL        string
  ChatId     ChatId
  Snapshot   Snapshot
  IsUsable   bool
  IsEmpty    bool
  SearchedAt time.Time
}

func (r SearchRecord) CanMonitor() bool {
  return r.IsUsable && !r.IsEmpty && !r.Snapshot.IsEmpty()
}

type MonitoringSession struct {
  ID        string
  ChatId    ChatId
  URL       string
  IsUsable  bool
  StartedAt time.Time

  mu       sync.Mutex
  snapshot Snapshot
  stopped  chan struct{}
  once     sync.Once
}

func NewMonitoringSession(record SearchRecord) *MonitoringSession {
  return &MonitoringSession{
    ID:        uuid.NewString(),
    ChatId:    record.ChatId,
    URL:       record.URL,
    IsUsable:  record.IsUsable,
    StartedAt: time.Now(),
    snapshot:  record.Snapshot,
    stopped:   make(chan struct{}),
  }
}

func (s *MonitoringSession) Snapshot() Snapshot {
  s.mu.Lock()
  defer s.mu.Unlock()

  return s.snapshot
}

func (s *MonitoringSession) SetSnapshot(snapshot Snapshot) {
  s.mu.Lock()
  defer s.mu.Unlock()

  s.snapshot = snapshot
}

func (s *MonitoringSession) Stop() {
  s.once.Do(func() {
    close(s.stopped)
  })
}

func (s *MonitoringSession) IsStopped() bool {
  select {
  case <-s.stopped:
    return true
  default:
    return false
  }
}
