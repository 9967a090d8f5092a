package wizard

import (
  "fmt"
  "strconv"
  "strings"
  "time"

  set "github.com/deckarep/golang-set/v2"
  "github.com/samber/lo"
  "github.com/ushakovn/tourwatch/internal/models"
  "github.com/ushakovn/tourwatch/internal/reference"
)

const (
  suggestionsLimit = 3
  // самое длинное название курорта в справочнике
  maxPhraseWords = 4
)

var (
  resortsClearLiterals = set.NewSet("нет", "нету", "не важно")
  mealsClearLiterals   = set.NewSet("НЕ НУЖНО", "НЕТУ", "НЕТ", "ЛЮБОЙ")
  childrenNoneLiterals = set.NewSet("нет", "нету")
)

func applyCountry(input string, params *models.SearchParams) (outcome, error) {
  name := strings.ToLower(input)

  id, ok := reference.Countries.Lookup(name)
  if !ok {
    suggestions := reference.Countries.Suggest(name, suggestionsLimit)

    return outcome{}, rejectLookup(fmt.Sprintf(`❌ Страна не найдена

Проверьте правильность написания.
Возможные варианты:
%s

Попробуйте еще раз или введите 'отмена' для выхода`, formatSuggestions(suggestions)), suggestions)
  }

  params.Countries = []string{id}

  return outcome{echo: "✅ Страна выбрана: " + input}, nil
}

func applyDepartureCity(input string, params *models.SearchParams) (outcome, error) {
  name := strings.ToLower(input)

  id, ok := reference.DepartureCities.Lookup(name)
  if !ok {
    suggestions := reference.DepartureCities.Suggest(name, suggestionsLimit)

    return outcome{}, rejectLookup(fmt.Sprintf(`❌ Город не найден

Возможные варианты:
%s

Попробуйте еще раз:`, formatSuggestions(suggestions)), suggestions)
  }

  params.DepartureCity = id

  return outcome{echo: "✅ Город вылета: " + input}, nil
}

func applyResorts(input string, params *models.SearchParams) (outcome, error) {
  text := strings.ToLower(input)

  if resortsClearLiterals.ContainsOne(text) {
    params.Resorts = nil
    return outcome{echo: "✅ Курорты: Не указаны"}, nil
  }

  found, parts, missed := matchPhrases(reference.Resorts, strings.Fields(text))

  if len(found) == 0 {
    return outcome{}, rejectLookup(`❌ Курорты не найдены

Проверьте правильность написания и попробуйте еще раз:`, nil)
  }

  params.Resorts = found

  out := outcome{echo: "✅ Курорты: " + strings.Join(parts, ", ")}

  if len(missed) > 0 {
    out.warnings = append(out.warnings, "⚠️ Не найдены курорты: "+strings.Join(missed, ", "))
  }

  return out, nil
}

func applyMeals(input string, params *models.SearchParams) (outcome, error) {
  text := strings.ToUpper(input)

  if mealsClearLiterals.ContainsOne(text) {
    params.Meals = nil
    return outcome{echo: "✅ Питание: Любой"}, nil
  }

  tokens := strings.Fields(text)
  found, missed := matchTokens(reference.Meals, tokens)

  if len(found) == 0 {
    return outcome{}, rejectLookup(`❌ Типы питания не распознаны

Проверьте правильность кодов и попробуйте еще раз:`, nil)
  }

  params.Meals = found

  out := outcome{echo: "✅ Питание: " + strings.Join(tokens, ", ")}

  if len(missed) > 0 {
    out.warnings = append(out.warnings, "⚠️ Неизвестные типы питания: "+strings.Join(missed, ", "))
  }

  return out, nil
}

func applyAdults(input string, params *models.SearchParams) (outcome, error) {
  count, ok := parseCount(input)
  if !ok || count == 0 {
    return outcome{}, rejectInput(`❌ Неверный формат

Введите число больше 0:`)
  }

  params.Adults = lo.ToPtr(count)

  return outcome{echo: fmt.Sprintf("✅ Взрослые: %d", count)}, nil
}

func applyChildren(input string, params *models.SearchParams) (outcome, error) {
  text := strings.ToLower(input)

  count, ok := parseCount(text)
  if !ok && !childrenNoneLiterals.ContainsOne(text) {
    return outcome{}, rejectInput(`❌ Неверный формат

Введите число или 'нет':`)
  }

  params.Children = lo.ToPtr(count)

  return outcome{echo: fmt.Sprintf("✅ Дети: %d", count)}, nil
}

func applyInfants(input string, params *models.SearchParams) (outcome, error) {
  count, ok := parseCount(input)
  if !ok {
    return outcome{}, rejectInput(`❌ Неверный формат

Введите число:`)
  }

  params.Infants = lo.ToPtr(count)

  return outcome{echo: fmt.Sprintf("✅ Младенцы: %d", count)}, nil
}

func applyNights(input string, params *models.SearchParams) (outcome, error) {
  tokens := strings.Fields(input)

  guidance := `❌ Неверный формат

Введите два числа через пробел:
Пример: 7 14`

  if len(tokens) != 2 {
    return outcome{}, rejectInput(guidance)
  }

  from, okFrom := parseCount(tokens[0])
  to, okTo := parseCount(tokens[1])

  if !okFrom || !okTo {
    return outcome{}, rejectInput(guidance)
  }

  params.Nights = &models.NightRange{
    From: from,
    To:   to,
  }

  return outcome{echo: fmt.Sprintf("✅ Ночи: от %d до %d", from, to)}, nil
}

func applyHotelCategory(input string, params *models.SearchParams) (outcome, error) {
  var (
    valid   []int
    invalid []string
  )

  for _, token := range strings.Fields(input) {
    category, ok := parseCount(token)

    if ok && category >= 1 && category <= 5 {
      valid = append(valid, category)
      continue
    }
    invalid = append(invalid, token)
  }

  if len(valid) == 0 {
    return outcome{}, rejectInput(`❌ Неверные категории

Введите числа от 1 до 5 через пробел:
Пример: 3 4 5`)
  }

  params.HotelCategories = valid

  labels := lo.Map(valid, func(category int, _ int) string {
    return strconv.Itoa(category)
  })

  out := outcome{echo: fmt.Sprintf("✅ Категории отелей: %s*", strings.Join(labels, ", "))}

  if len(invalid) > 0 {
    out.warnings = append(out.warnings,
      fmt.Sprintf("⚠️ Игнорированы: %s (допустимы значения 1-5)", strings.Join(invalid, ", ")))
  }

  return out, nil
}

func applyDates(input string, params *models.SearchParams) (outcome, error) {
  tokens := strings.Fields(input)

  if len(tokens) != 2 {
    return outcome{}, rejectInput(`❌ Неверный формат

Введите две даты через пробел:
Пример: 2025-06-01 2025-06-15`)
  }

  from, errFrom := time.Parse(models.DateLayout, tokens[0])
  to, errTo := time.Parse(models.DateLayout, tokens[1])

  if errFrom != nil || errTo != nil {
    return outcome{}, rejectInput(`❌ Неверный формат даты

Используйте формат ГГГГ-ММ-ДД:
Пример: 2025-06-01 2025-06-15`)
  }

  if to.Before(from) {
    return outcome{}, rejectInput(`❌ Дата начала должна быть раньше даты окончания

Попробуйте снова:`)
  }

  params.CheckIn = &models.DateRange{
    From: from,
    To:   to,
  }

  return outcome{echo: fmt.Sprintf("✅ Даты: %s - %s", tokens[0], tokens[1])}, nil
}

func matchTokens(table *reference.Table, tokens []string) (found, missed []string) {
  for _, token := range tokens {
    if id, ok := table.Lookup(token); ok {
      found = append(found, id)
      continue
    }
    missed = append(missed, token)
  }
  return found, missed
}

// matchPhrases жадно ищет самые длинные названия из нескольких слов.
// parts хранит найденные названия и ненайденные слова в порядке ввода.
func matchPhrases(table *reference.Table, tokens []string) (found, parts, missed []string) {
  for i := 0; i < len(tokens); {
    matched := false

    for size := min(maxPhraseWords, len(tokens)-i); size > 0; size-- {
      phrase := strings.Join(tokens[i:i+size], " ")

      if id, ok := table.Lookup(phrase); ok {
        found = append(found, id)
        parts = append(parts, phrase)
        i += size
        matched = true
        break
      }
    }

    if !matched {
      missed = append(missed, tokens[i])
      parts = append(parts, tokens[i])
      i++
    }
  }
  return found, parts, missed
}

// parseCount принимает только цифры, без знака.
func parseCount(s string) (int, bool) {
  value, err := strconv.ParseUint(s, 10, 31)
  if err != nil {
    return 0, false
  }
  return int(value), true
}

func formatSuggestions(suggestions []string) string {
  if len(suggestions) == 0 {
    return "не найдено"
  }

  lines := lo.Map(suggestions, func(suggestion string, _ int) string {
    return "• " + suggestion
  })

  return strings.Join(lines, "\n")
}
