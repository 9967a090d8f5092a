package telegram

import (
  "context"
  "fmt"

  tgbot "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  log "github.com/sirupsen/logrus"
)

type Config struct {
  Token string
  Debug bool
}

func NewBotClient(config Config) (*tgbot.Bot, error) {
  opts := []tgbot.Option{
    tgbot.WithDefaultHandler(logUnhandledUpdate),
    tgbot.WithErrorsHandler(func(err error) {
      log.Errorf("telegram.Bot: %v", err)
    }),
  }
  if config.Debug {
    opts = append(opts, tgbot.WithDebug())
  }

  bot, err := tgbot.New(config.Token, opts...)
  if err != nil {
    return nil, fmt.Errorf("tgbot.New: %w", err)
  }
  log.Info("telegram bot client connection successfully")

  return bot, nil
}

func logUnhandledUpdate(_ context.Context, _ *tgbot.Bot, update *tgmodels.Update) {
  if update == nil || update.Message == nil {
    return
  }

  log.
    WithField("chat_id", update.Message.Chat.ID).
    Debug("telegram update not handled")
}
