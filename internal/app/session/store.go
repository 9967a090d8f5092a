package session

import (
  "context"
  "errors"
  "fmt"
  "time"

  "github.com/ushakovn/tourwatch/internal/models"
  "github.com/ushakovn/tourwatch/pkg/cache"
  "golang.org/x/time/rate"
)

const DefaultActionSpacing = 2 * time.Second

var (
  ErrSearchNotFound   = errors.New("search not found")
  ErrMonitorForbidden = errors.New("monitoring not available")
)

type Store struct {
  config    Config
  wizards   *cache.Cache[models.ChatId, models.WizardState]
  searches  *cache.Cache[models.ChatId, models.SearchRecord]
  monitors  *cache.Cache[models.ChatId, *models.MonitoringSession]
  throttles *cache.Cache[models.ChatId, *rate.Limiter]
}

type Config struct {
  ActionSpacing time.Duration
}

func NewStore(config Config) *Store {
  if config.ActionSpacing <= 0 {
    config.ActionSpacing = DefaultActionSpacing
  }

  return &Store{
    config:    config,
    wizards:   cache.NewCache[models.ChatId, models.WizardState](),
    searches:  cache.NewCache[models.ChatId, models.SearchRecord](),
    monitors:  cache.NewCache[models.ChatId, *models.MonitoringSession](),
    throttles: cache.NewCache[models.ChatId, *rate.Limiter](),
  }
}

func (s *Store) Wizard(chatId models.ChatId) models.WizardState {
  state, _ := s.wizards.Get(chatId)
  return state
}

func (s *Store) SaveWizard(chatId models.ChatId, state models.WizardState) {
  s.wizards.Set(chatId, state)
}

func (s *Store) ResetWizard(chatId models.ChatId) {
  s.wizards.Delete(chatId)
}

// SaveSearch заменяет прошлый результат поиска пользователя.
func (s *Store) SaveSearch(record models.SearchRecord) {
  if record.SearchedAt.IsZero() {
    record.SearchedAt = time.Now()
  }
  s.searches.Set(record.ChatId, record)
}

func (s *Store) LastSearch(chatId models.ChatId) (models.SearchRecord, bool) {
  return s.searches.Get(chatId)
}

// StartMonitoring создает сессию по последнему поиску. Прошлая сессия
// пользователя останавливается.
func (s *Store) StartMonitoring(chatId models.ChatId) (*models.MonitoringSession, error) {
  record, ok := s.searches.Get(chatId)
  if !ok {
    return nil, ErrSearchNotFound
  }
  if !record.CanMonitor() {
    return nil, fmt.Errorf("%w: search has no tours", ErrMonitorForbidden)
  }

  session := models.NewMonitoringSession(record)

  if prev, ok := s.monitors.Swap(chatId, session); ok {
    prev.Stop()
  }

  return session, nil
}

func (s *Store) Monitoring(chatId models.ChatId) (*models.MonitoringSession, bool) {
  return s.monitors.Get(chatId)
}

// IsActive сообщает, что сессия не остановлена и все еще текущая для чата.
func (s *Store) IsActive(session *models.MonitoringSession) bool {
  if session.IsStopped() {
    return false
  }
  current, ok := s.monitors.Get(session.ChatId)

  return ok && current.ID == session.ID
}

func (s *Store) StopMonitoring(chatId models.ChatId) bool {
  session, ok := s.monitors.Delete(chatId)
  if ok {
    session.Stop()
  }
  return ok
}

// RemoveMonitoring удаляет сессию, только если она все еще текущая.
func (s *Store) RemoveMonitoring(session *models.MonitoringSession) bool {
  session.Stop()

  return s.monitors.CompareAndDelete(session.ChatId, func(current *models.MonitoringSession) bool {
    return current.ID == session.ID
  })
}

func (s *Store) MonitoringCount() int {
  return s.monitors.Len()
}

// Throttle выдерживает паузу между действиями одного пользователя.
func (s *Store) Throttle(ctx context.Context, chatId models.ChatId) error {
  limiter := s.throttles.GetOrSet(chatId, func() *rate.Limiter {
    return rate.NewLimiter(rate.Every(s.config.ActionSpacing), 1)
  })

  if err := limiter.Wait(ctx); err != nil {
    return fmt.Errorf("limiter.Wait: %w", err)
  }
  return nil
}
