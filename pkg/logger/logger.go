package logger

import (
  log "github.com/sirupsen/logrus"
)

const ProductionEnv = "production"

type Config struct {
  Env    string
  Level  string
  Fields map[string]any
}

type formatter struct {
  format log.Formatter
  fields map[string]any
}

func (f formatter) Format(entry *log.Entry) ([]byte, error) {
  for k, v := range f.fields {
    if _, exists := entry.Data[k]; !exists {
      entry.Data[k] = v
    }
  }
  return f.format.Format(entry)
}

func Init(config Config) {
  var (
    format log.Formatter
    caller bool
  )

  switch config.Env {

  case ProductionEnv:
    format = new(log.JSONFormatter)
    caller = true

  default:
    format = &log.TextFormatter{FullTimestamp: true}
    caller = false
  }

  level, err := log.ParseLevel(config.Level)
  if err != nil {
    level = log.InfoLevel
  }

  fields := config.Fields
  if fields == nil {
    fields = map[string]any{}
  }

  log.SetFormatter(formatter{
    fields: fields,
    format: format,
  })
  log.SetLevel(level)
  log.SetReportCaller(caller)
}
