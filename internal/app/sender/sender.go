package sender

import (
  "context"
  "fmt"

  telegram "github.com/go-telegram/bot"
  tgmodels "github.com/go-telegram/bot/models"
  "github.com/samber/lo"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/tourwatch/internal/models"
)

// Sender доставляет сообщения в чат, длинный текст уходит частями.
type Sender struct {
  deps Dependencies
}

type Dependencies struct {
  Telegram *telegram.Bot
}

func NewSender(deps Dependencies) *Sender {
  return &Sender{deps: deps}
}

func (c *Sender) Notify(ctx context.Context, message models.SendableMessage) error {
  chunks := message.Text.Chunks()

  for index, chunk := range chunks {
    err := c.Send(ctx, SendParams{
      ChatId: message.ChatId,
      Text:   chunk,
    })
    if err != nil {
      return fmt.Errorf("c.Send: chunk %d/%d: %w", index+1, len(chunks), err)
    }
  }

  log.
    WithFields(log.Fields{
      "message.uuid":    message.UUID,
      "message.chat_id": message.ChatId,
      "message.type":    message.Type,
      "message.chunks":  len(chunks),
    }).
    Debug("message sent")

  return nil
}

type SendParams struct {
  ChatId int64
  Text   string
  Reply  tgmodels.ReplyMarkup
}

func (c *Sender) Send(ctx context.Context, params SendParams) error {
  _, err := c.deps.Telegram.SendMessage(ctx, &telegram.SendMessageParams{
    ChatID:      params.ChatId,
    Text:        params.Text,
    ReplyMarkup: params.Reply,
    LinkPreviewOptions: &tgmodels.LinkPreviewOptions{
      IsDisabled: lo.ToPtr(true),
    },
  })
  if err != nil {
    return fmt.Errorf("c.deps.Telegram.SendMessage: %w", err)
  }

  return nil
}
