package models

import (
  "context"
  "errors"
  "fmt"
)

var (
  ErrFetch        = errors.New("fetch failed")
  ErrFetchTimeout = errors.New("page load timeout")
)

type Fetcher interface {
  Fetch(ctx context.Context, url string) (string, error)
}

// NewFetchError оборачивает ошибку загрузки, таймауты помечаются отдельно.
func NewFetchError(op string, err error) error {
  if errors.Is(err, context.DeadlineExceeded) {
    return fmt.Errorf("%w: %w: %s: %v", ErrFetch, ErrFetchTimeout, op, err)
  }
  return fmt.Errorf("%w: %s: %v", ErrFetch, op, err)
}

func FetchErrorText(err error) string {
  if errors.Is(err, ErrFetchTimeout) {
    return "Таймаут при загрузке страницы"
  }
  return "Ошибка при получении содержимого страницы"
}
