package telegram

import (
  "context"
  "strings"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
)

func (b *Transport) registerHandlers(ctx context.Context) {
  b.registerCommandHandler(ctx, registerCommandHandlerParams{
    Command: "/start",
    Handler: b.handleStartMenu,
  })

  b.registerCommandHandler(ctx, registerCommandHandlerParams{
    Command: "/help",
    Handler: b.handleHelpCommand,
  })

  b.registerTextHandler(ctx, registerTextHandlerParams{
    Handler: b.handleWizardInput,
  })
}

type registerCommandHandlerParams struct {
  Command string
  Handler func(ctx context.Context, bot *telegram.Bot, update *tgmodels.Update)
}

func (b *Transport) registerCommandHandler(_ context.Context, params registerCommandHandlerParams) {
  b.deps.Telegram.RegisterHandler(
    telegram.HandlerTypeMessageText, params.Command,
    telegram.MatchTypeExact, params.Handler,
  )
}

type registerTextHandlerParams struct {
  Handler func(ctx context.Context, bot *telegram.Bot, update *tgmodels.Update)
}

// registerTextHandler принимает текст, только пока мастер параметров ждет ввода.
func (b *Transport) registerTextHandler(_ context.Context, params registerTextHandlerParams) {
  b.deps.Telegram.RegisterHandlerMatchFunc(
    func(update *tgmodels.Update) bool {
      if isCommandText(update) {
        return false
      }

      chatId, ok := findChatIdInUpdate(update)
      if !ok {
        return false
      }

      return b.deps.Store.Wizard(chatId).IsCollecting()
    },
    params.Handler,
  )
}

func isCommandText(update *tgmodels.Update) bool {
  if update == nil || update.Message == nil {
    return true
  }
  return strings.HasPrefix(update.Message.Text, "/")
}

func findChatIdInUpdate(update *tgmodels.Update) (int64, bool) {
  if update != nil && update.Message != nil && update.Message.Chat.ID != 0 {
    return update.Message.Chat.ID, true
  }
  return 0, false
}
