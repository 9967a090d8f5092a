package config

import (
  "fmt"
  "os"
  "path/filepath"
  "strings"
  "time"

  "github.com/knadh/koanf/parsers/json"
  "github.com/knadh/koanf/parsers/toml"
  "github.com/knadh/koanf/parsers/yaml"
  "github.com/knadh/koanf/providers/env"
  "github.com/knadh/koanf/providers/file"
  "github.com/knadh/koanf/v2"
  "github.com/samber/lo"
  "github.com/ushakovn/tourwatch/pkg/validator"
)

const EnvPrefix = "TOURWATCH_"

var configFiles = []string{
  "config.yaml",
  "config.yml",
  "config.json",
  "config.toml",
}

type Config struct {
  TelegramToken        string        `koanf:"telegram_token" validate:"required"`
  TelegramDebug        bool          `koanf:"telegram_debug"`
  AppEnv               string        `koanf:"app_env"`
  LogLevel             string        `koanf:"log_level"`
  SearchBaseURL        string        `koanf:"search_base_url" validate:"required,url"`
  FetcherMode          string        `koanf:"fetcher_mode" validate:"oneof=browser direct"`
  FetchPageTimeout     time.Duration `koanf:"fetch_page_timeout" validate:"gt=0"`
  FetchReadyTimeout    time.Duration `koanf:"fetch_ready_timeout" validate:"gt=0"`
  BrowserHeadless      bool          `koanf:"browser_headless"`
  BrowserUserAgent     string        `koanf:"browser_user_agent"`
  MonitorInitialDelay  time.Duration `koanf:"monitor_initial_delay" validate:"gt=0"`
  MonitorMaxDelay      time.Duration `koanf:"monitor_max_delay" validate:"gtefield=MonitorInitialDelay"`
  MonitorBackoffFactor float64       `koanf:"monitor_backoff_factor" validate:"gt=1"`
  ActionSpacing        time.Duration `koanf:"action_spacing" validate:"gte=0"`
  MetricsAddr          string        `koanf:"metrics_addr"`
}

var defaults = map[string]any{
  "app_env":                "local",
  "log_level":              "info",
  "search_base_url":        "https://api-gateway.travelata.ru/statistic/cheapestTours",
  "fetcher_mode":           "browser",
  "fetch_page_timeout":     30 * time.Second,
  "fetch_ready_timeout":    10 * time.Second,
  "browser_headless":       true,
  "monitor_initial_delay":  600 * time.Second,
  "monitor_max_delay":      3600 * time.Second,
  "monitor_backoff_factor": 1.5,
  "action_spacing":         2 * time.Second,
}

// Load читает config файл из рабочей директории, затем переменные
// окружения с префиксом TOURWATCH_.
func Load() (*Config, error) {
  return LoadFrom(".")
}

func LoadFrom(dir string) (*Config, error) {
  k := koanf.New(".")

  configFile, found := lo.Find(configFiles, func(name string) bool {
    _, err := os.Stat(filepath.Join(dir, name))
    return err == nil
  })

  if found {
    path := filepath.Join(dir, configFile)

    var parser koanf.Parser

    switch filepath.Ext(configFile) {
    case ".yaml", ".yml":
      parser = yaml.Parser()
    case ".json":
      parser = json.Parser()
    case ".toml":
      parser = toml.Parser()
    }

    if err := k.Load(file.Provider(path), parser); err != nil {
      return nil, fmt.Errorf("k.Load: %s: %w", path, err)
    }
  }

  err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
    return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
  }), nil)
  if err != nil {
    return nil, fmt.Errorf("k.Load: env: %w", err)
  }

  for key, value := range defaults {
    if !k.Exists(key) {
      if err = k.Set(key, value); err != nil {
        return nil, fmt.Errorf("k.Set: %s: %w", key, err)
      }
    }
  }

  cfg := new(Config)

  if err = k.Unmarshal("", cfg); err != nil {
    return nil, fmt.Errorf("k.Unmarshal: %w", err)
  }

  if err = cfg.Validate(); err != nil {
    return nil, fmt.Errorf("cfg.Validate: %w", err)
  }

  return cfg, nil
}

func (c *Config) Validate() error {
  return validator.Struct(c)
}
