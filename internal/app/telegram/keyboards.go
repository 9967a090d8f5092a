package telegram

import (
  "context"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  tginline "github.com/go-telegram/ui/keyboard/inline"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/tourwatch/internal/models"
)

// Клавиатуры создаются один раз: каждая регистрирует свой обработчик по префиксу.
type keyboards struct {
  start      *tginline.Keyboard
  help       *tginline.Keyboard
  wizardHead *tginline.Keyboard
  wizardStep *tginline.Keyboard
  summary    *tginline.Keyboard
  empty      *tginline.Keyboard
  found      *tginline.Keyboard
  monitoring *tginline.Keyboard
  stopped    *tginline.Keyboard
  cancelled  *tginline.Keyboard
}

type button struct {
  Text   string
  Action models.Action
}

type actionTarget struct {
  ChatId    int64
  MessageId int
}

type actionHandler func(ctx context.Context, target actionTarget)

func (b *Transport) newActionTable() map[models.Action]actionHandler {
  return map[models.Action]actionHandler{
    models.ActionSetParams:       b.handleSetParams,
    models.ActionHelp:            b.handleHelp,
    models.ActionStartSearch:     b.handleStartSearch,
    models.ActionStartMonitoring: b.handleStartMonitoring,
    models.ActionStopMonitoring:  b.handleStopMonitoring,
    models.ActionBackToStart:     b.handleBackToStart,
  }
}

func (b *Transport) newKeyboards() keyboards {
  var (
    setParams  = button{Text: "🎯 Настроить параметры", Action: models.ActionSetParams}
    help       = button{Text: "ℹ️ Помощь", Action: models.ActionHelp}
    changeAny  = button{Text: "⚙️ Изменить параметры", Action: models.ActionSetParams}
    retry      = button{Text: "🔄 Попробовать снова", Action: models.ActionStartSearch}
    newSearch  = button{Text: "🔍 Новый поиск", Action: models.ActionSetParams}
    resume     = button{Text: "🔄 Продолжить поиск", Action: models.ActionStartSearch}
    stop       = button{Text: "⏹ Остановить мониторинг", Action: models.ActionStopMonitoring}
    backToHead = button{Text: "◀️ Назад", Action: models.ActionBackToStart}
    backToStep = button{Text: "◀️ Назад", Action: models.ActionSetParams}
  )

  return keyboards{
    start:      b.newMenuKeyboard("start", setParams, help),
    help:       b.newMenuKeyboard("help", button{Text: "🎯 Начать настройку", Action: models.ActionSetParams}),
    wizardHead: b.newMenuKeyboard("wizard_head", backToHead),
    wizardStep: b.newMenuKeyboard("wizard_step", backToStep),
    summary:    b.newMenuKeyboard("summary", button{Text: "🚀 Начать поиск", Action: models.ActionStartSearch}, changeAny),
    empty:      b.newMenuKeyboard("empty", changeAny, retry),
    found: b.newMenuKeyboard("found",
      button{Text: "🔍 Включить мониторинг", Action: models.ActionStartMonitoring},
      button{Text: "⚙️ Новый поиск", Action: models.ActionSetParams}),
    monitoring: b.newMenuKeyboard("monitoring", stop),
    stopped:    b.newMenuKeyboard("stopped", newSearch, resume),
    cancelled:  b.newMenuKeyboard("cancelled", setParams, help),
  }
}

func (b *Transport) newMenuKeyboard(prefix string, buttons ...button) *tginline.Keyboard {
  keyboard := newInlineKeyboard(b.deps.Telegram, prefix)

  for _, btn := range buttons {
    keyboard = keyboard.Row().Button(btn.Text, []byte(btn.Action), b.handleAction)
  }

  return keyboard
}

func newInlineKeyboard(bot *telegram.Bot, prefix string) *tginline.Keyboard {
  return tginline.New(bot,
    tginline.OnError(func(err error) {
      log.Errorf("telegram.InlineKeyboard: %v", err)
    }),
    tginline.WithPrefix(prefix),
    tginline.NoDeleteAfterClick(),
  )
}

// handleAction находит обработчик нажатой кнопки в таблице действий.
func (b *Transport) handleAction(ctx context.Context, _ *telegram.Bot, message tgmodels.MaybeInaccessibleMessage, data []byte) {
  action := models.Action(data)

  target, ok := findActionTarget(message)
  if !ok {
    log.
      WithField("action", action).
      Warn("chat_id not found")

    return
  }

  handler, ok := b.actions[action]
  if !ok {
    log.
      WithField("chat_id", target.ChatId).
      WithField("action", action).
      Warn("unknown action")

    return
  }

  if err := b.deps.Store.Throttle(ctx, target.ChatId); err != nil {
    log.
      WithField("chat_id", target.ChatId).
      WithField("action", action).
      Errorf("b.deps.Store.Throttle: %v", err)

    return
  }

  handler(ctx, target)
}

func findActionTarget(message tgmodels.MaybeInaccessibleMessage) (actionTarget, bool) {
  if message.Message != nil && message.Message.Chat.ID != 0 {
    return actionTarget{
      ChatId:    message.Message.Chat.ID,
      MessageId: message.Message.ID,
    }, true
  }
  if message.InaccessibleMessage != nil && message.InaccessibleMessage.Chat.ID != 0 {
    return actionTarget{
      ChatId:    message.InaccessibleMessage.Chat.ID,
      MessageId: message.InaccessibleMessage.MessageID,
    }, true
  }
  return actionTarget{}, false
}
