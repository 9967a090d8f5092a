package telegram

import (
  "context"
  "errors"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/tourwatch/internal/app/search"
  "github.com/ushakovn/tourwatch/internal/app/sender"
  "github.com/ushakovn/tourwatch/internal/app/session"
  "github.com/ushakovn/tourwatch/internal/models"
)

type sendMessageParams = sender.SendParams

func (b *Transport) sendMessage(ctx context.Context, params sendMessageParams) {
  if err := b.deps.Sender.Send(ctx, params); err != nil {
    log.
      WithField("chat_id", params.ChatId).
      Errorf("b.deps.Sender.Send: %v", err)
  }
}

func (b *Transport) sendSendable(ctx context.Context, result models.BuildResult) {
  if !result.IsValid {
    return
  }

  if err := b.deps.Sender.Notify(ctx, result.Message); err != nil {
    log.
      WithField("chat_id", result.Message.ChatId).
      WithField("type", result.Message.Type).
      Errorf("b.deps.Sender.Notify: %v", err)
  }
}

type editMessageParams struct {
  Target actionTarget
  Text   string
  Reply  tgmodels.ReplyMarkup
}

// editMessage заменяет текст меню, при ошибке отправляет новое сообщение.
func (b *Transport) editMessage(ctx context.Context, params editMessageParams) {
  if params.Target.MessageId != 0 {
    _, err := b.deps.Telegram.EditMessageText(ctx, &telegram.EditMessageTextParams{
      ChatID:      params.Target.ChatId,
      MessageID:   params.Target.MessageId,
      Text:        params.Text,
      ReplyMarkup: params.Reply,
    })
    if err == nil {
      return
    }

    log.
      WithField("chat_id", params.Target.ChatId).
      WithField("message_id", params.Target.MessageId).
      Warnf("b.deps.Telegram.EditMessageText: %v", err)
  }

  b.sendMessage(ctx, sendMessageParams{
    ChatId: params.Target.ChatId,
    Text:   params.Text,
    Reply:  params.Reply,
  })
}

func searchErrorText(err error) string {
  switch {
  case errors.Is(err, models.ErrFetch):
    return "❌ " + models.FetchErrorText(err)

  case errors.Is(err, search.ErrInvalidParams):
    return "❌ Параметры поиска не найдены. Начните с настройки."

  case errors.Is(err, search.ErrPayloadNotFound):
    return "❌ Не удалось найти данные на странице. Попробуйте позже."

  case errors.Is(err, search.ErrSchema):
    return "❌ Ошибка получения данных от системы поиска"

  case errors.Is(err, search.ErrParse):
    return "❌ Ошибка: Неверный формат данных от сервера"
  }

  return "❌ Ошибка при обработке данных"
}

func monitoringErrorText(err error) string {
  switch {
  case errors.Is(err, session.ErrSearchNotFound):
    return "❌ Данные для мониторинга не найдены. Выполните поиск сначала."

  case errors.Is(err, session.ErrMonitorForbidden):
    return "❌ Мониторинг недоступен - туры не найдены."
  }

  return "❌ Не удалось запустить мониторинг. Попробуйте позже."
}
