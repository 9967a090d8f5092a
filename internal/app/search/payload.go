package search

import (
  "bytes"
  "encoding/json"
  "errors"
  "fmt"
  "strings"

  "github.com/spf13/cast"
  "github.com/ushakovn/tourwatch/pkg/parser/xpath"
)

var (
  ErrParse  = errors.New("payload parse error")
  ErrSchema = errors.New("payload schema error")

  ErrPayloadNotFound = fmt.Errorf("%w: json object not found", ErrParse)
)

const preXPath = "//pre"

const (
  successKey = "success"
  dataKey    = "data"
)

type offerRow map[string]any

// decodePayload находит JSON ответа в тексте страницы и возвращает строки data.
func decodePayload(raw string) ([]offerRow, error) {
  content := unwrapMarkup(raw)

  start := strings.Index(content, "{")
  end := strings.LastIndex(content, "}")

  if start == -1 || end == -1 || end < start {
    return nil, ErrPayloadNotFound
  }

  // Ключи ищутся точно: json.Unmarshal в структуру сравнивает их без учета регистра.
  var decoded map[string]json.RawMessage

  if err := json.Unmarshal([]byte(content[start:end+1]), &decoded); err != nil {
    return nil, fmt.Errorf("%w: json.Unmarshal: %v", ErrParse, err)
  }

  var success bool

  rawSuccess, ok := decoded[successKey]
  if !ok {
    return nil, fmt.Errorf("%w: field %s not found", ErrSchema, successKey)
  }
  if err := json.Unmarshal(rawSuccess, &success); err != nil || !success {
    return nil, fmt.Errorf("%w: success flag is not true", ErrSchema)
  }

  rawData, ok := decoded[dataKey]
  if !ok {
    return nil, fmt.Errorf("%w: field %s not found", ErrSchema, dataKey)
  }

  var rows []offerRow

  decoder := json.NewDecoder(bytes.NewReader(rawData))
  decoder.UseNumber()

  if err := decoder.Decode(&rows); err != nil || rows == nil {
    return nil, fmt.Errorf("%w: data is not an array", ErrSchema)
  }

  return rows, nil
}

// unwrapMarkup достает JSON из страницы браузера, где он лежит внутри <pre>.
func unwrapMarkup(raw string) string {
  trimmed := strings.ToLower(strings.TrimSpace(raw))

  if !strings.Contains(trimmed, "<pre") && !strings.HasPrefix(trimmed, "<html") {
    return raw
  }

  if text, ok := xpath.ExtractText(raw, preXPath); ok {
    return text
  }
  return raw
}

func (r offerRow) value(key string) (any, error) {
  value, ok := r[key]
  if !ok {
    return nil, fmt.Errorf("%w: field %s not found", ErrSchema, key)
  }
  if value == nil {
    return nil, fmt.Errorf("%w: field %s is null", ErrSchema, key)
  }
  return value, nil
}

func (r offerRow) string(key string) (string, error) {
  value, err := r.value(key)
  if err != nil {
    return "", err
  }

  s, err := cast.ToStringE(value)
  if err != nil {
    return "", fmt.Errorf("%w: field %s: %v", ErrSchema, key, err)
  }
  return s, nil
}

func (r offerRow) int64(key string) (int64, error) {
  value, err := r.value(key)
  if err != nil {
    return 0, err
  }

  n, err := cast.ToInt64E(value)
  if err != nil {
    return 0, fmt.Errorf("%w: field %s: %v", ErrSchema, key, err)
  }
  return n, nil
}

func (r offerRow) float64(key string) (float64, error) {
  value, err := r.value(key)
  if err != nil {
    return 0, err
  }

  f, err := cast.ToFloat64E(value)
  if err != nil {
    return 0, fmt.Errorf("%w: field %s: %v", ErrSchema, key, err)
  }
  return f, nil
}
