package worker

import (
  "context"
  "errors"
  "sync"

  log "github.com/sirupsen/logrus"
)

const DefaultCount = 1

var ErrPoolStopped = errors.New("worker pool stopped")

type Call func(ctx context.Context) error

type Pool struct {
  count uint8
  ch    chan Call
  stop  chan struct{}
  done  chan struct{}
  once  sync.Once
}

func NewPool(ctx context.Context, count uint8) *Pool {
  if count == 0 {
    count = DefaultCount
  }

  pool := &Pool{
    count: count,
    ch:    make(chan Call),
    stop:  make(chan struct{}),
    done:  make(chan struct{}),
  }
  pool.start(ctx)

  return pool
}

func (p *Pool) start(ctx context.Context) {
  var wg sync.WaitGroup

  wg.Add(int(p.count))

  for index := 0; index < int(p.count); index++ {
    go func() {
      defer wg.Done()

      for {
        select {
        case <-ctx.Done():
          log.Warn("worker.pool: context cancelled: worker stopped")
          return

        case <-p.stop:
          return

        case call := <-p.ch:
          if err := call(ctx); err != nil {
            log.Errorf("worker.pool: worker call failed: %v", err)
          }
        }
      }
    }()
  }

  go func() {
    wg.Wait()

    close(p.done)
  }()
}

// Push блокируется, пока один из воркеров не примет вызов.
func (p *Pool) Push(ctx context.Context, call Call) error {
  select {
  case <-p.stop:
    return ErrPoolStopped

  case <-p.done:
    return ErrPoolStopped

  case <-ctx.Done():
    return ctx.Err()

  case p.ch <- call:
    return nil
  }
}

func (p *Pool) StopWait() {
  p.once.Do(func() {
    close(p.stop)
  })

  <-p.done
}
