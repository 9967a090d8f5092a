package search

import (
  "context"
  "errors"
  "fmt"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/tourwatch/internal/models"
  "github.com/ushakovn/tourwatch/pkg/metrics"
)

const DefaultBaseURL = "https://api-gateway.travelata.ru/statistic/cheapestTours"

const (
  outcomeHotels     = "hotels"
  outcomeEmpty      = "empty"
  outcomeFetchError = "fetch_error"
  outcomeParseError = "parse_error"
)

var ErrInvalidParams = errors.New("invalid search params")

type Searcher struct {
  config Config
  deps   Dependencies
}

type Config struct {
  BaseURL string
}

type Dependencies struct {
  Fetcher models.Fetcher
}

type Outcome struct {
  URL      string
  Result   *models.SearchResult
  Snapshot models.Snapshot
}

// Record возвращает запись для запуска мониторинга.
func (o *Outcome) Record(chatId models.ChatId) models.SearchRecord {
  return models.SearchRecord{
    URL:      o.URL,
    ChatId:   chatId,
    Snapshot: o.Snapshot,
    IsUsable: o.Result.IsUsable,
    IsEmpty:  o.Result.IsEmpty,
  }
}

func NewSearcher(config Config, deps Dependencies) *Searcher {
  if config.BaseURL == "" {
    config.BaseURL = DefaultBaseURL
  }

  return &Searcher{
    config: config,
    deps:   deps,
  }
}

func (s *Searcher) URL(params models.SearchParams) string {
  return BuildURL(s.config.BaseURL, params)
}

func (s *Searcher) Search(ctx context.Context, params models.SearchParams) (*Outcome, error) {
  if err := params.Validate(); err != nil {
    return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
  }

  url := s.URL(params)

  log.WithField("url", url).Debug("search started")

  content, err := s.deps.Fetcher.Fetch(ctx, url)
  if err != nil {
    metrics.ObserveSearch(outcomeFetchError)

    return nil, fmt.Errorf("s.deps.Fetcher.Fetch: %w", err)
  }

  result, err := ParseResult(content)
  if err != nil {
    metrics.ObserveSearch(outcomeParseError)

    return nil, fmt.Errorf("ParseResult: %w", err)
  }

  if result.IsEmpty {
    metrics.ObserveSearch(outcomeEmpty)
  } else {
    metrics.ObserveSearch(outcomeHotels)
  }

  log.
    WithFields(log.Fields{
      "url":    url,
      "hotels": len(result.Hotels),
      "offers": result.OffersCount,
    }).
    Info("search completed")

  return &Outcome{
    URL:      url,
    Result:   result,
    Snapshot: BuildSnapshot(content),
  }, nil
}

// Poll повторно загружает страницу поиска и строит снимок.
func (s *Searcher) Poll(ctx context.Context, url string) (models.Snapshot, error) {
  content, err := s.deps.Fetcher.Fetch(ctx, url)
  if err != nil {
    return nil, fmt.Errorf("s.deps.Fetcher.Fetch: %w", err)
  }
  return BuildSnapshot(content), nil
}
