package main

import (
  "context"
  "os"
  "os/signal"
  "syscall"
  "time"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/tourwatch/internal/app/probe"
  "github.com/ushakovn/tourwatch/internal/app/search"
  "github.com/ushakovn/tourwatch/internal/app/sender"
  "github.com/ushakovn/tourwatch/internal/app/session"
  tgtransport "github.com/ushakovn/tourwatch/internal/app/telegram"
  "github.com/ushakovn/tourwatch/internal/app/tracker"
  "github.com/ushakovn/tourwatch/internal/config"
  "github.com/ushakovn/tourwatch/internal/deps/fetcher"
  "github.com/ushakovn/tourwatch/internal/deps/fetcher/browser"
  "github.com/ushakovn/tourwatch/internal/deps/fetcher/direct"
  tgbot "github.com/ushakovn/tourwatch/internal/deps/telegram"
  "github.com/ushakovn/tourwatch/internal/models"
  "github.com/ushakovn/tourwatch/pkg/logger"
  "github.com/ushakovn/tourwatch/pkg/metrics"
)

func main() {
  ctx, cancel := context.WithCancel(context.Background())
  defer cancel()

  cfg, err := config.Load()
  if err != nil {
    log.Fatalf("config.Load: %v", err)
  }

  logger.Init(logger.Config{
    Env:   cfg.AppEnv,
    Level: cfg.LogLevel,
    Fields: map[string]any{
      "app": "tourwatch",
    },
  })

  log.Warn("telegram bot app initializing")

  registry := metrics.InitRegistry()

  var pageFetcher models.Fetcher

  switch cfg.FetcherMode {
  case fetcher.ModeDirect:
    pageFetcher = direct.NewFetcher(direct.Config{
      Timeout:   cfg.FetchPageTimeout,
      UserAgent: cfg.BrowserUserAgent,
    })

  default:
    chrome, err := browser.NewChrome(ctx, browser.Config{
      Headless:     cfg.BrowserHeadless,
      UserAgent:    cfg.BrowserUserAgent,
      PageTimeout:  cfg.FetchPageTimeout,
      ReadyTimeout: cfg.FetchReadyTimeout,
    })
    if err != nil {
      log.Fatalf("browser.NewChrome: %v", err)
    }
    defer chrome.Stop()

    pageFetcher = chrome
  }

  serialFetcher := fetcher.NewSerial(ctx, cfg.FetcherMode, pageFetcher)
  defer serialFetcher.Stop()

  searcher := search.NewSearcher(
    search.Config{BaseURL: cfg.SearchBaseURL},
    search.Dependencies{Fetcher: serialFetcher},
  )

  store := session.NewStore(session.Config{
    ActionSpacing: cfg.ActionSpacing,
  })

  telegramBotClient, err := tgbot.NewBotClient(tgbot.Config{
    Token: cfg.TelegramToken,
    Debug: cfg.TelegramDebug,
  })
  if err != nil {
    log.Fatalf("tgbot.NewBotClient: %v", err)
  }

  messageSender := sender.NewSender(sender.Dependencies{
    Telegram: telegramBotClient,
  })

  trackerClient := tracker.NewTracker(
    tracker.Config{
      InitialDelay: cfg.MonitorInitialDelay,
      MaxDelay:     cfg.MonitorMaxDelay,
      Factor:       cfg.MonitorBackoffFactor,
    },
    tracker.Dependencies{
      Poller:   searcher,
      Notifier: messageSender,
      Sessions: store,
    },
  )
  trackerClient.Start(ctx)

  telegramBotTransport := tgtransport.NewTransport(
    tgtransport.Config{MonitorInterval: cfg.MonitorInitialDelay},
    tgtransport.Dependencies{
      Telegram: telegramBotClient,
      Sender:   messageSender,
      Searcher: searcher,
      Tracker:  trackerClient,
      Store:    store,
    },
  )
  telegramBotTransport.Start(ctx)

  probeServer := probe.NewServer(
    probe.Config{Addr: cfg.MetricsAddr},
    probe.Dependencies{Registry: registry, Sessions: store},
  )
  probeServer.Start()

  exitSignal := make(chan os.Signal, 1)
  signal.Notify(exitSignal, syscall.SIGINT, syscall.SIGTERM)
  <-exitSignal

  log.Warn("telegram bot app terminating")

  shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
  defer cancelShutdown()

  if err = probeServer.Shutdown(shutdownCtx); err != nil {
    log.Errorf("probeServer.Shutdown: %v", err)
  }

  cancel()
  trackerClient.Stop()
}
