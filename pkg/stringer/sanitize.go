package stringer

import (
  "html"
  "regexp"
  "strings"

  "github.com/microcosm-cc/bluemonday"
  "github.com/samber/lo"
  "golang.org/x/text/cases"
  "golang.org/x/text/language"
)

var (
  policy           = bluemonday.StrictPolicy()
  regexRepeatSpace = regexp.MustCompile(`\s{2,}`)
)

// StripTags удаляет разметку, раскрывает html сущности и схлопывает пробелы.
func StripTags(s string) string {
  return SanitizeString(policy.Sanitize(s))
}

func ToTitle(s string, lang ...language.Tag) string {
  lTag := language.Und
  for _, l := range lang {
    lTag = l
    break
  }
  return cases.Title(lTag, cases.NoLower).String(s)
}

// SanitizeString раскрывает html сущности и заменяет повторяющиеся пробелы одним.
func SanitizeString(s string) string {
  s = html.UnescapeString(s)
  s = regexRepeatSpace.ReplaceAllLiteralString(s, " ")
  s = strings.TrimSpace(s)
  return s
}

// Chunks режет строку на части длиной не больше size символов.
func Chunks(s string, size int) []string {
  if size <= 0 || s == "" {
    return []string{s}
  }

  runes := []rune(s)
  if len(runes) <= size {
    return []string{s}
  }

  return lo.Map(lo.Chunk(runes, size), func(part []rune, _ int) string {
    return string(part)
  })
}
