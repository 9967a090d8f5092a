package search

import (
  "net/url"
  "strconv"
  "strings"

  "github.com/ushakovn/tourwatch/internal/models"
)

// BuildQuery формирует параметры запроса в фиксированном порядке.
// Пустые поля пропускаются, списки повторяют ключ для каждого элемента.
func BuildQuery(params models.SearchParams) []string {
  var query []string

  appendValue := func(key, value string) {
    query = append(query, key+"="+url.QueryEscape(value))
  }
  appendInt := func(key string, value *int) {
    if value != nil {
      appendValue(key, strconv.Itoa(*value))
    }
  }

  for _, country := range params.Countries {
    appendValue("countries[]", country)
  }

  if params.DepartureCity != "" {
    appendValue("departureCity", params.DepartureCity)
  }

  if params.Nights != nil {
    appendValue("nightRange[from]", strconv.Itoa(params.Nights.From))
    appendValue("nightRange[to]", strconv.Itoa(params.Nights.To))
  }

  for _, resort := range params.Resorts {
    appendValue("resorts[]", resort)
  }

  for _, meal := range params.Meals {
    appendValue("meals[]", meal)
  }

  appendInt("touristGroup[adults]", params.Adults)
  appendInt("touristGroup[kids]", params.Children)
  appendInt("touristGroup[infants]", params.Infants)

  for _, category := range params.HotelCategories {
    appendValue("hotelCategories[]", strconv.Itoa(category))
  }

  if params.CheckIn != nil {
    appendValue("checkInDateRange[from]", params.CheckIn.From.Format(models.DateLayout))
    appendValue("checkInDateRange[to]", params.CheckIn.To.Format(models.DateLayout))
  }

  return query
}

func BuildURL(baseURL string, params models.SearchParams) string {
  query := BuildQuery(params)

  if len(query) == 0 {
    return baseURL
  }
  return baseURL + "?" + strings.Join(query, "&")
}
