package telegram

import (
  "context"
  "errors"
  "fmt"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/tourwatch/internal/app/wizard"
  "github.com/ushakovn/tourwatch/internal/models"
  "github.com/ushakovn/tourwatch/pkg/metrics"
)

const (
  welcomeText = `✨ Добро пожаловать в Travelata Parser!

Я помогу найти самые выгодные туры по вашим параметрам 🤑
Начнем с настройки параметров поиска:`

  helpText = `📖 Помощь по использованию бота:

1. Настройка параметров - поэтапная настройка всех критериев поиска
2. Поиск туров - автоматический поиск по вашим параметрам
3. Мониторинг - отслеживание изменений цен и новых предложений

Доступные команды:
/start - начать работу
/help - показать эту справку

💡 Совет: Для точного поиска указывайте конкретные параметры`

  mainMenuText = `✨ Главное меню

Выберите действие:`

  monitoringStoppedText = `⏹ Мониторинг остановлен

Выберите действие:`

  whatNextText = `📊 Что дальше?

• 🔍 Мониторинг - отслеживать изменения цен
• ⚙️ Новый поиск - изменить параметры`
)

func (b *Transport) handleStartMenu(ctx context.Context, _ *telegram.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    log.
      WithField("update.message", update.Message).
      Warn("chat_id not found")

    return
  }

  if err := b.deps.Store.Throttle(ctx, chatId); err != nil {
    log.
      WithField("chat_id", chatId).
      Errorf("b.deps.Store.Throttle: %v", err)

    return
  }

  b.deps.Store.ResetWizard(chatId)

  b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   welcomeText,
    Reply:  b.keyboards.start,
  })
}

func (b *Transport) handleHelpCommand(ctx context.Context, _ *telegram.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    log.
      WithField("update.message", update.Message).
      Warn("chat_id not found")

    return
  }

  b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   helpText,
    Reply:  b.keyboards.help,
  })
}

func (b *Transport) handleWizardInput(ctx context.Context, _ *telegram.Bot, update *tgmodels.Update) {
  chatId, ok := findChatIdInUpdate(update)
  if !ok {
    return
  }

  if err := b.deps.Store.Throttle(ctx, chatId); err != nil {
    log.
      WithField("chat_id", chatId).
      Errorf("b.deps.Store.Throttle: %v", err)

    return
  }

  state := b.deps.Store.Wizard(chatId)

  next, reply, err := wizard.Apply(state, update.Message.Text)

  metrics.ObserveWizard(state.Step.String(), err == nil)

  if err != nil {
    b.handleWizardReject(ctx, chatId, state, reply, err)
    return
  }

  b.deps.Store.SaveWizard(chatId, next)

  b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   reply.Confirmation,
  })

  for _, warning := range reply.Warnings {
    b.sendMessage(ctx, sendMessageParams{
      ChatId: chatId,
      Text:   warning,
    })
  }

  keyboard := b.keyboards.wizardStep
  if reply.Completed {
    keyboard = b.keyboards.summary
  }

  b.sendMessage(ctx, sendMessageParams{
    ChatId: chatId,
    Text:   reply.Prompt,
    Reply:  keyboard,
  })
}

func (b *Transport) handleWizardReject(ctx context.Context, chatId int64, state models.WizardState, reply wizard.Reply, err error) {
  switch {
  case errors.Is(err, wizard.ErrCancelled):
    b.deps.Store.ResetWizard(chatId)

    b.sendMessage(ctx, sendMessageParams{
      ChatId: chatId,
      Text:   "❌ Настройка параметров отменена\n\nВыберите действие:",
      Reply:  b.keyboards.cancelled,
    })

  case errors.Is(err, wizard.ErrInputValidation), errors.Is(err, wizard.ErrLookupNotFound):
    log.
      WithField("chat_id", chatId).
      WithField("step", state.Step).
      Debugf("wizard.Apply: %v", err)

    b.sendMessage(ctx, sendMessageParams{
      ChatId: chatId,
      Text:   reply.Prompt,
    })

  default:
    log.
      WithField("chat_id", chatId).
      WithField("step", state.Step).
      Errorf("wizard.Apply: %v", err)
  }
}

func (b *Transport) handleSetParams(ctx context.Context, target actionTarget) {
  state, reply := wizard.Start()

  b.deps.Store.SaveWizard(target.ChatId, state)

  b.editMessage(ctx, editMessageParams{
    Target: target,
    Text:   reply.Prompt,
    Reply:  b.keyboards.wizardHead,
  })
}

func (b *Transport) handleHelp(ctx context.Context, target actionTarget) {
  b.editMessage(ctx, editMessageParams{
    Target: target,
    Text:   helpText,
    Reply:  b.keyboards.help,
  })
}

func (b *Transport) handleBackToStart(ctx context.Context, target actionTarget) {
  b.deps.Store.ResetWizard(target.ChatId)

  b.editMessage(ctx, editMessageParams{
    Target: target,
    Text:   mainMenuText,
    Reply:  b.keyboards.start,
  })
}

func (b *Transport) handleStartSearch(ctx context.Context, target actionTarget) {
  state := b.deps.Store.Wizard(target.ChatId)

  if !state.IsConfigured() {
    b.editMessage(ctx, editMessageParams{
      Target: target,
      Text:   "❌ Параметры поиска не найдены. Начните с настройки.",
    })
    b.handleSetParams(ctx, actionTarget{ChatId: target.ChatId})

    return
  }

  b.editMessage(ctx, editMessageParams{
    Target: target,
    Text:   "🔍 Анализирую ваши предпочтения...",
  })

  b.sendSendable(ctx, models.Sendable(target.ChatId).
    SetParams(state.Params).
    BuildSummaryMessage())

  b.sendMessage(ctx, sendMessageParams{
    ChatId: target.ChatId,
    Text:   "🌐 Формирую запрос к системе поиска...",
  })
  b.sendMessage(ctx, sendMessageParams{
    ChatId: target.ChatId,
    Text:   "🔄 Подключаюсь к системе поиска...",
  })

  outcome, err := b.deps.Searcher.Search(ctx, state.Params)
  if err != nil {
    log.
      WithField("chat_id", target.ChatId).
      WithField("action", models.ActionStartSearch).
      Errorf("b.deps.Searcher.Search: %v", err)

    b.sendMessage(ctx, sendMessageParams{
      ChatId: target.ChatId,
      Text:   searchErrorText(err),
    })
    return
  }

  b.deps.Store.SaveSearch(outcome.Record(target.ChatId))

  report := models.Sendable(target.ChatId).
    SetSearchResultPtr(outcome.Result).
    BuildReportMessage()

  if outcome.Result.IsEmpty {
    b.sendMessage(ctx, sendMessageParams{
      ChatId: target.ChatId,
      Text:   "✅ Поиск завершен",
    })
    b.sendMessage(ctx, sendMessageParams{
      ChatId: target.ChatId,
      Text:   report.Message.Text.Value,
      Reply:  b.keyboards.empty,
    })
    return
  }

  b.sendMessage(ctx, sendMessageParams{
    ChatId: target.ChatId,
    Text:   "✅ Поиск завершен успешно!",
  })

  b.sendSendable(ctx, report)

  b.sendMessage(ctx, sendMessageParams{
    ChatId: target.ChatId,
    Text:   whatNextText,
    Reply:  b.keyboards.found,
  })
}

func (b *Transport) handleStartMonitoring(ctx context.Context, target actionTarget) {
  monitoring, err := b.deps.Store.StartMonitoring(target.ChatId)
  if err != nil {
    log.
      WithField("chat_id", target.ChatId).
      WithField("action", models.ActionStartMonitoring).
      Warnf("b.deps.Store.StartMonitoring: %v", err)

    b.editMessage(ctx, editMessageParams{
      Target: target,
      Text:   monitoringErrorText(err),
    })
    return
  }

  if err = b.deps.Tracker.Launch(monitoring); err != nil {
    b.deps.Store.RemoveMonitoring(monitoring)

    log.
      WithField("chat_id", target.ChatId).
      WithField("action", models.ActionStartMonitoring).
      Errorf("b.deps.Tracker.Launch: %v", err)

    b.editMessage(ctx, editMessageParams{
      Target: target,
      Text:   monitoringErrorText(err),
    })
    return
  }

  text := fmt.Sprintf(`🔍 Мониторинг активирован!

Я буду проверять изменения каждые %d минут:
• 📈 Изменения цен
• 🆕 Новые туры
• 🏨 Новые отели

Вы получите уведомление о любых изменениях.`, int(b.config.MonitorInterval.Minutes()))

  b.editMessage(ctx, editMessageParams{
    Target: target,
    Text:   text,
    Reply:  b.keyboards.monitoring,
  })
}

func (b *Transport) handleStopMonitoring(ctx context.Context, target actionTarget) {
  if !b.deps.Store.StopMonitoring(target.ChatId) {
    log.
      WithField("chat_id", target.ChatId).
      Debug("monitoring session not found")
  }

  b.editMessage(ctx, editMessageParams{
    Target: target,
    Text:   monitoringStoppedText,
    Reply:  b.keyboards.stopped,
  })
}
