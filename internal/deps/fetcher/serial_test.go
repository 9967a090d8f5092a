package fetcher_test

import (
  "context"
  "errors"
  "fmt"
  "sync"
  "sync/atomic"
  "testing"
  "time"

  "github.com/ushakovn/tourwatch/internal/deps/fetcher"
  "github.com/ushakovn/tourwatch/internal/models"
)

type slowFetcher struct {
  running int32
  peak    int32
  delay   time.Duration
}

func (f *slowFetcher) Fetch(_ context.Context, url string) (string, error) {
  running := atomic.AddInt32(&f.running, 1)
  defer atomic.AddInt32(&f.running, -1)

  for {
    peak := atomic.LoadInt32(&f.peak)
    if running <= peak || atomic.CompareAndSwapInt32(&f.peak, peak, running) {
      break
    }
  }

  time.Sleep(f.delay)

  if url == "fail" {
    return "", fmt.Errorf("%w: boom", models.ErrFetch)
  }
  return "content:" + url, nil
}

func TestSerial_OneFetchAtATime(t *testing.T) {
  ctx, cancel := context.WithCancel(context.Background())
  defer cancel()

  next := &slowFetcher{delay: 10 * time.Millisecond}

  serial := fetcher.NewSerial(ctx, fetcher.ModeDirect, next)
  defer serial.Stop()

  var wg sync.WaitGroup

  for i := 0; i < 5; i++ {
    wg.Add(1)
    go func(i int) {
      defer wg.Done()

      url := fmt.Sprintf("url-%d", i)

      content, err := serial.Fetch(ctx, url)
      if err != nil {
        t.Errorf("unexpected err: %v", err)
        return
      }
      if content != "content:"+url {
        t.Errorf("unexpected content: %q", content)
      }
    }(i)
  }
  wg.Wait()

  if peak := atomic.LoadInt32(&next.peak); peak != 1 {
    t.Fatalf("expected max concurrency 1, got %d", peak)
  }
}

func TestSerial_Errors(t *testing.T) {
  ctx, cancel := context.WithCancel(context.Background())
  defer cancel()

  serial := fetcher.NewSerial(ctx, fetcher.ModeDirect, &slowFetcher{})

  if _, err := serial.Fetch(ctx, "fail"); !errors.Is(err, models.ErrFetch) {
    t.Fatalf("expected ErrFetch, got %v", err)
  }

  serial.Stop()

  if _, err := serial.Fetch(ctx, "url"); !errors.Is(err, models.ErrFetch) {
    t.Fatalf("expected ErrFetch after stop, got %v", err)
  }
}
