package fetcher

import (
  "context"
  "fmt"
  "time"

  "github.com/ushakovn/tourwatch/internal/models"
  "github.com/ushakovn/tourwatch/pkg/metrics"
  "github.com/ushakovn/tourwatch/pkg/worker"
)

const (
  ModeBrowser = "browser"
  ModeDirect  = "direct"
)

type result struct {
  content string
  err     error
}

// Serial пропускает все загрузки через один воркер: браузер один на процесс.
type Serial struct {
  mode string
  pool *worker.Pool
  next models.Fetcher
}

func NewSerial(ctx context.Context, mode string, next models.Fetcher) *Serial {
  return &Serial{
    mode: mode,
    pool: worker.NewPool(ctx, worker.DefaultCount),
    next: next,
  }
}

// Fetch ждет очереди с учетом ctx. Принятая воркером загрузка
// дожидается завершения даже после отмены ctx.
func (s *Serial) Fetch(ctx context.Context, url string) (string, error) {
  done := make(chan result, 1)

  call := func(poolCtx context.Context) error {
    started := time.Now()

    content, err := s.next.Fetch(poolCtx, url)
    metrics.ObserveFetch(s.mode, err, time.Since(started))

    done <- result{content: content, err: err}

    return err
  }

  if err := s.pool.Push(ctx, call); err != nil {
    return "", fmt.Errorf("%w: s.pool.Push: %w", models.ErrFetch, err)
  }

  res := <-done

  return res.content, res.err
}

func (s *Serial) Stop() {
  s.pool.StopWait()
}
