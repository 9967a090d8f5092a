package browser

import (
  "context"
  "fmt"
  "time"

  "github.com/chromedp/chromedp"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/tourwatch/internal/models"
)

const (
  DefaultPageTimeout  = 30 * time.Second
  DefaultReadyTimeout = 10 * time.Second
  DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
)

type Config struct {
  Headless     bool
  UserAgent    string
  PageTimeout  time.Duration
  ReadyTimeout time.Duration
}

// Chrome держит один процесс браузера, каждая загрузка открывает новую вкладку.
type Chrome struct {
  config        Config
  browserCtx    context.Context
  cancelAlloc   context.CancelFunc
  cancelBrowser context.CancelFunc
}

func NewChrome(ctx context.Context, config Config) (*Chrome, error) {
  if config.UserAgent == "" {
    config.UserAgent = DefaultUserAgent
  }
  if config.PageTimeout <= 0 {
    config.PageTimeout = DefaultPageTimeout
  }
  if config.ReadyTimeout <= 0 {
    config.ReadyTimeout = DefaultReadyTimeout
  }

  opts := append(chromedp.DefaultExecAllocatorOptions[:],
    chromedp.Flag("headless", config.Headless),
    chromedp.Flag("disable-gpu", true),
    chromedp.Flag("no-sandbox", true),
    chromedp.Flag("disable-dev-shm-usage", true),
    chromedp.Flag("disable-blink-features", "AutomationControlled"),
    chromedp.WindowSize(1920, 1080),
    chromedp.UserAgent(config.UserAgent),
  )

  allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
  browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

  // Первый запуск без таймаута, иначе браузер закроется вместе с ним.
  if err := chromedp.Run(browserCtx); err != nil {
    cancelBrowser()
    cancelAlloc()

    return nil, fmt.Errorf("chromedp.Run: %w", err)
  }
  log.Info("chrome browser started")

  return &Chrome{
    config:        config,
    browserCtx:    browserCtx,
    cancelAlloc:   cancelAlloc,
    cancelBrowser: cancelBrowser,
  }, nil
}

// Fetch загружает страницу и возвращает ее html. Начатая загрузка не
// прерывается отменой ctx, ограничена только таймаутами конфига.
func (c *Chrome) Fetch(ctx context.Context, url string) (string, error) {
  if err := ctx.Err(); err != nil {
    return "", err
  }

  tab, cancelTab := chromedp.NewContext(c.browserCtx)
  defer cancelTab()

  pageCtx, cancelPage := context.WithTimeout(tab, c.config.PageTimeout)
  defer cancelPage()

  if err := chromedp.Run(pageCtx, chromedp.Navigate(url)); err != nil {
    return "", models.NewFetchError("chromedp.Navigate", err)
  }

  readyCtx, cancelReady := context.WithTimeout(pageCtx, c.config.ReadyTimeout)
  defer cancelReady()

  var content string

  err := chromedp.Run(readyCtx,
    chromedp.WaitReady("body", chromedp.ByQuery),
    chromedp.OuterHTML("html", &content, chromedp.ByQuery),
  )
  if err != nil {
    return "", models.NewFetchError("chromedp.WaitReady", err)
  }

  log.
    WithField("url", url).
    WithField("length", len(content)).
    Debug("page content fetched")

  return content, nil
}

func (c *Chrome) Stop() {
  c.cancelBrowser()
  c.cancelAlloc()

  log.Info("chrome browser stopped")
}
