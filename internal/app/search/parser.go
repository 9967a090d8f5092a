package search

import (
  "fmt"
  "sort"

  "github.com/ushakovn/tourwatch/internal/models"
  "github.com/ushakovn/tourwatch/pkg/stringer"
)

// ParseResult разбирает ответ поиска и группирует предложения по отелям.
// Пустой массив data не ошибка: возвращается результат с IsEmpty.
func ParseResult(raw string) (*models.SearchResult, error) {
  rows, err := decodePayload(raw)
  if err != nil {
    return nil, fmt.Errorf("decodePayload: %w", err)
  }

  if len(rows) == 0 {
    return &models.SearchResult{
      IsEmpty:  true,
      IsUsable: true,
    }, nil
  }

  offers := make([]models.TourOffer, 0, len(rows))

  for index, row := range rows {
    offer, err := parseOffer(row)
    if err != nil {
      return nil, fmt.Errorf("parseOffer: row %d: %w", index, err)
    }
    offers = append(offers, offer)
  }

  return &models.SearchResult{
    Hotels:      aggregateOffers(offers),
    OffersCount: len(offers),
    IsUsable:    true,
  }, nil
}

func aggregateOffers(offers []models.TourOffer) []*models.HotelAggregate {
  var hotels []*models.HotelAggregate

  byId := make(map[string]*models.HotelAggregate, len(offers))

  for _, offer := range offers {
    if hotel, ok := byId[offer.HotelID]; ok {
      hotel.Add(offer)
      continue
    }

    hotel := models.NewHotelAggregate(offer)

    byId[offer.HotelID] = hotel
    hotels = append(hotels, hotel)
  }

  // Порядок первого появления сохраняется при равных ценах.
  sort.SliceStable(hotels, func(i, j int) bool {
    return hotels[i].MinPrice() < hotels[j].MinPrice()
  })

  return hotels
}

func parseOffer(row offerRow) (offer models.TourOffer, err error) {
  if offer.HotelID, err = row.string("hotelId"); err != nil {
    return offer, err
  }
  if offer.HotelName, err = row.string("hotelName"); err != nil {
    return offer, err
  }
  if offer.HotelCategory, err = row.string("hotelCategoryName"); err != nil {
    return offer, err
  }
  if offer.HotelRating, err = row.float64("hotelRating"); err != nil {
    return offer, err
  }
  if offer.Price, err = row.int64("price"); err != nil {
    return offer, err
  }

  nights, err := row.int64("nights")
  if err != nil {
    return offer, err
  }
  offer.Nights = int(nights)

  if offer.CheckinDate, err = row.string("checkinDate"); err != nil {
    return offer, err
  }
  if offer.MealID, err = row.string("mealId"); err != nil {
    return offer, err
  }
  if offer.TourPageURL, err = row.string("tourPageUrl"); err != nil {
    return offer, err
  }

  offer.HotelName = stringer.StripTags(offer.HotelName)
  offer.HotelCategory = stringer.StripTags(offer.HotelCategory)

  return offer, nil
}
