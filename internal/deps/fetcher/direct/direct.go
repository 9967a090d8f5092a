package direct

import (
  "context"
  "fmt"
  "time"

  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/tourwatch/internal/models"
)

const DefaultTimeout = 30 * time.Second

type Config struct {
  Timeout   time.Duration
  UserAgent string
}

type Fetcher struct {
  client *resty.Client
}

func NewFetcher(config Config) *Fetcher {
  if config.Timeout <= 0 {
    config.Timeout = DefaultTimeout
  }

  client := resty.New().
    SetTimeout(config.Timeout).
    SetHeader("Accept", "application/json, text/plain, */*").
    SetHeader("Accept-Language", "ru-RU,ru;q=0.9")

  if config.UserAgent != "" {
    client.SetHeader("User-Agent", config.UserAgent)
  }

  return &Fetcher{client: client}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
  resp, err := f.client.R().SetContext(ctx).Get(url)
  if err != nil {
    return "", models.NewFetchError("resty.Client.Get", err)
  }

  if resp.IsError() {
    return "", fmt.Errorf("%w: unexpected status: %s", models.ErrFetch, resp.Status())
  }

  log.
    WithField("url", url).
    WithField("length", len(resp.Body())).
    Debug("page content fetched")

  return resp.String(), nil
}
