package telegram

import (
  "context"
  "time"

  telegram "github.com/go-telegram/bot"
  "github.com/ushakovn/tourwatch/internal/app/search"
  "github.com/ushakovn/tourwatch/internal/app/sender"
  "github.com/ushakovn/tourwatch/internal/app/session"
  "github.com/ushakovn/tourwatch/internal/app/tracker"
  "github.com/ushakovn/tourwatch/internal/models"
)

type Transport struct {
  config    Config
  deps      Dependencies
  keyboards keyboards
  actions   map[models.Action]actionHandler
}

type Config struct {
  MonitorInterval time.Duration
}

type Dependencies struct {
  Telegram *telegram.Bot
  Sender   *sender.Sender
  Searcher *search.Searcher
  Tracker  *tracker.Tracker
  Store    *session.Store
}

func NewTransport(config Config, deps Dependencies) *Transport {
  if config.MonitorInterval <= 0 {
    config.MonitorInterval = tracker.DefaultInitialDelay
  }
  if deps.Sender == nil {
    deps.Sender = sender.NewSender(sender.Dependencies{Telegram: deps.Telegram})
  }

  b := &Transport{
    config: config,
    deps:   deps,
  }
  b.actions = b.newActionTable()
  b.keyboards = b.newKeyboards()

  return b
}

func (b *Transport) Start(ctx context.Context) {
  b.registerHandlers(ctx)

  go b.deps.Telegram.Start(ctx)
}
