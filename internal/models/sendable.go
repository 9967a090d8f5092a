package models

import (
  "fmt"
  "math"
  "strconv"
  "strings"

  "github.com/google/uuid"
  "github.com/samber/lo"
  "github.com/ushakovn/tourwatch/internal/reference"
  "github.com/ushakovn/tourwatch/pkg/money"
  "github.com/ushakovn/tourwatch/pkg/stringer"
  "golang.org/x/text/language"
)

const (
  ReportSendableType      SendableType = "report"
  EmptyReportSendableType SendableType = "empty_report"
  SummarySendableType     SendableType = "summary"
  ChangesSendableType     SendableType = "changes"
  NoticeSendableType      SendableType = "notice"
)

const (
  ChunkSize        = 4000
  ReportHotelLimit = 15
  ReportDateLimit  = 3
)

const (
  headerLine    = "══════════════════════════════"
  separatorLine = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
)

type SendableType string

type SendableMessage struct {
  UUID   string       `json:"uuid"`
  ChatId int64        `json:"chat_id"`
  Type   SendableType `json:"type"`
  Text   SendableText `json:"text"`
}

type SendableText struct {
  Value string `json:"value"`
}

// Chunks делит текст на части по длине для отправки.
func (t SendableText) Chunks() []string {
  return stringer.Chunks(t.Value, ChunkSize)
}

type BuildResult struct {
  Message SendableMessage
  IsValid bool
}

type Builder struct {
  chatId  int64
  result  SearchResult
  params  SearchParams
  changes []ChangeEvent
}

func Sendable(chatId int64) Builder {
  return Builder{chatId: chatId}
}

func (b Builder) SetSearchResult(result SearchResult) Builder {
  b.result = result
  return b
}

func (b Builder) SetSearchResultPtr(result *SearchResult) Builder {
  b.result = lo.FromPtr(result)
  return b
}

func (b Builder) SetParams(params SearchParams) Builder {
  b.params = params
  return b
}

func (b Builder) SetChanges(changes []ChangeEvent) Builder {
  b.changes = changes
  return b
}

func (b Builder) newResult(typ SendableType, text string, valid bool) BuildResult {
  return BuildResult{
    Message: SendableMessage{
      UUID:   uuid.NewString(),
      ChatId: b.chatId,
      Type:   typ,
      Text: SendableText{
        Value: strings.TrimSpace(text),
      },
    },
    IsValid: valid,
  }
}

func (b Builder) BuildReportMessage() BuildResult {
  if b.result.IsEmpty || len(b.result.Hotels) == 0 {
    text := `📭 По вашему запросу туров не найдено.

Попробуйте изменить параметры поиска:`

    return b.newResult(EmptyReportSendableType, text, true)
  }

  hotels := b.result.Hotels
  shown := min(len(hotels), ReportHotelLimit)

  var text strings.Builder

  text.WriteString("🎯 РЕЗУЛЬТАТЫ ПОИСКА\n")
  text.WriteString(headerLine + "\n")
  fmt.Fprintf(&text, "🏨 Найдено отелей: %d\n", len(hotels))
  fmt.Fprintf(&text, "📊 Всего туров: %d\n", b.result.OffersCount)
  text.WriteString(headerLine + "\n\n")

  for index, hotel := range hotels[:shown] {
    fmt.Fprintf(&text, "%d. %s\n", index+1, hotel.Name)
    fmt.Fprintf(&text, "   🏷 Категория: %s\n", hotel.Category)
    fmt.Fprintf(&text, "   ⭐ Рейтинг: %s\n", formatRating(hotel.Rating))
    fmt.Fprintf(&text, "   💰 Цена: %s\n", formatPriceRange(hotel.MinPrice(), hotel.MaxPrice()))
    fmt.Fprintf(&text, "   🗓 Ночи: %s\n", formatNightRange(hotel.MinNights, hotel.MaxNights))
    fmt.Fprintf(&text, "   📅 Даты заезда: %s\n", formatCheckinDates(hotel.SortedCheckinDates()))
    fmt.Fprintf(&text, "   🔗 Ссылка: %s\n", lo.Ternary(hotel.CheapestURL != "", hotel.CheapestURL, "#"))

    if index+1 < shown {
      text.WriteString(separatorLine + "\n\n")
    }
  }

  if len(hotels) > ReportHotelLimit {
    fmt.Fprintf(&text, "\n... и еще %d отелей", len(hotels)-ReportHotelLimit)
  }

  text.WriteString("\n\n📈 СТАТИСТИКА ПОИСКА:\n")
  fmt.Fprintf(&text, "• Самый дешевый отель: %s\n", money.String(b.result.MinPrice()))
  fmt.Fprintf(&text, "• Средний рейтинг отелей: ⭐%.2f\n", b.result.AverageRating())
  fmt.Fprintf(&text, "• Всего вариантов: %d туров\n", b.result.OffersCount)

  return b.newResult(ReportSendableType, text.String(), true)
}

func (b Builder) BuildSummaryMessage() BuildResult {
  summary := NewParamsSummary(b.params)

  return b.newResult(SummarySendableType, "📋 Параметры поиска:\n"+summary, summary != "")
}

func (b Builder) BuildChangesMessage() BuildResult {
  if len(b.changes) == 0 {
    return b.newResult(ChangesSendableType, "", false)
  }

  var text strings.Builder

  text.WriteString("📊 Обнаружены изменения:\n\n")

  for _, change := range b.changes {
    text.WriteString(formatChange(change))
    text.WriteString("\n\n")
  }
  text.WriteString(separatorLine)

  return b.newResult(ChangesSendableType, text.String(), true)
}

func (b Builder) BuildNoticeMessage(text string) BuildResult {
  return b.newResult(NoticeSendableType, text, strings.TrimSpace(text) != "")
}

// NewParamsSummary перечисляет заданные параметры поиска по одному на строку.
func NewParamsSummary(params SearchParams) string {
  var text strings.Builder

  if len(params.Countries) > 0 {
    fmt.Fprintf(&text, "• 🌍 Страна: %s\n", strings.Join(namesOf(reference.Countries, params.Countries), ", "))
  }

  if params.DepartureCity != "" {
    city := params.DepartureCity

    if name, ok := reference.DepartureCities.Name(city); ok {
      city = titleName(name)
    }
    fmt.Fprintf(&text, "• 🛫 Вылет из: %s\n", city)
  }

  if len(params.Resorts) > 0 {
    resorts := namesOf(reference.Resorts, params.Resorts)
    fmt.Fprintf(&text, "• 🏖 Курорты: %s\n", lo.Ternary(len(resorts) > 0, strings.Join(resorts, ", "), "Любые"))
  }

  if len(params.Meals) > 0 {
    meals := lo.Map(params.Meals, func(id string, _ int) string {
      name, _ := reference.Meals.Name(id)
      return lo.Ternary(name != "", name, id)
    })
    fmt.Fprintf(&text, "• 🍽 Питание: %s\n", strings.Join(meals, ", "))
  }

  if params.Adults != nil {
    fmt.Fprintf(&text, "• 👨‍👩‍👧‍👦 Взрослые: %d\n", *params.Adults)
  }

  if lo.FromPtr(params.Children) > 0 {
    fmt.Fprintf(&text, "• 👶 Дети: %d\n", *params.Children)
  }

  if lo.FromPtr(params.Infants) > 0 {
    fmt.Fprintf(&text, "• 🍼 Младенцы: %d\n", *params.Infants)
  }

  if params.Nights != nil {
    fmt.Fprintf(&text, "• 🗓 Ночи: %d-%d\n", params.Nights.From, params.Nights.To)
  }

  if len(params.HotelCategories) > 0 {
    categories := lo.Map(params.HotelCategories, func(category int, _ int) string {
      return strconv.Itoa(category)
    })
    fmt.Fprintf(&text, "• ⭐ Категории отелей: %s*\n", strings.Join(categories, ", "))
  }

  if params.CheckIn != nil {
    fmt.Fprintf(&text, "• 📅 Даты: %s - %s\n",
      params.CheckIn.From.Format(DateLayout),
      params.CheckIn.To.Format(DateLayout))
  }

  return text.String()
}

func namesOf(table *reference.Table, ids []string) []string {
  return lo.FilterMap(ids, func(id string, _ int) (string, bool) {
    name, ok := table.Name(id)
    return titleName(name), ok
  })
}

func titleName(name string) string {
  return stringer.ToTitle(name, language.Russian)
}

func formatChange(change ChangeEvent) string {
  switch change.Kind {
  case PriceDropChange:
    return fmt.Sprintf("💰 Понижение цены\n🏨 %s\n📉 Было: %s\n📊 Стало: %s\n📈 Изменение: ▼%.1f%%",
      change.HotelName, money.String(change.OldPrice), money.String(change.NewPrice),
      math.Abs(change.Percent))

  case PriceRiseChange:
    return fmt.Sprintf("💸 Повышение цены\n🏨 %s\n📈 Было: %s\n📊 Стало: %s\n📈 Изменение: ▲%.1f%%",
      change.HotelName, money.String(change.OldPrice), money.String(change.NewPrice),
      change.Percent)

  case ToursAddedChange:
    return fmt.Sprintf("🆕 Добавлены туры\n🏨 %s\n✅ Добавлено: +%d\n📊 Всего: %d туров",
      change.HotelName, change.Delta, change.NewCount)

  case ToursRemovedChange:
    return fmt.Sprintf("❌ Удалены туры\n🏨 %s\n❌ Удалено: -%d\n📊 Осталось: %d туров",
      change.HotelName, -change.Delta, change.NewCount)

  case NewHotelChange:
    return fmt.Sprintf("🏨 Новый отель\n🎯 %s\n💰 Цена от: %s\n📊 Туров: %d",
      change.HotelName, money.String(change.NewPrice), change.NewCount)

  case HotelRemovedChange:
    return fmt.Sprintf("🚫 Отель удален\n🎯 %s\n📊 Было туров: %d",
      change.HotelName, change.OldCount)
  }

  return ""
}

// formatRating печатает целый рейтинг с одним знаком после точки: 4.0, не 4.
func formatRating(rating float64) string {
  value := strconv.FormatFloat(rating, 'f', -1, 64)
  if !strings.ContainsAny(value, ".eEnN") {
    value += ".0"
  }
  return value
}

func formatPriceRange(minPrice, maxPrice int64) string {
  if minPrice == maxPrice {
    return "от " + money.String(minPrice)
  }
  return fmt.Sprintf("от %s до %s", money.String(minPrice), money.String(maxPrice))
}

func formatNightRange(minNights, maxNights int) string {
  if minNights == maxNights {
    return strconv.Itoa(minNights)
  }
  return fmt.Sprintf("%d-%d", minNights, maxNights)
}

func formatCheckinDates(dates []string) string {
  if len(dates) <= ReportDateLimit {
    return strings.Join(dates, ", ")
  }
  return fmt.Sprintf("%s (+%d)", strings.Join(dates[:ReportDateLimit], ", "), len(dates)-ReportDateLimit)
}
