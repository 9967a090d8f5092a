package models

import (
  "sort"

  set "github.com/deckarep/golang-set/v2"
)

type TourOffer struct {
  HotelID       string  `json:"hotel_id"`
  HotelName     string  `json:"hotel_name"`
  HotelCategory string  `json:"hotel_category"`
  HotelRating   float64 `json:"hotel_rating"`
  Price         int64   `json:"price"`
  Nights        int     `json:"nights"`
  CheckinDate   string  `json:"checkin_date"`
  MealID        string  `json:"meal_id"`
  TourPageURL   string  `json:"tour_page_url"`
}

type HotelAggregate struct {
  ID           string
  Name         string
  Category     string
  Rating       float64
  Prices       []int64
  MinNights    int
  MaxNights    int
  CheckinDates set.Set[string]
  MealIDs      set.Set[string]
  // CheapestURLs копит ссылки предложений, совпавших с текущим минимумом
  // на момент добавления, повторы при равных ценах сохраняются.
  CheapestURLs []string
  // CheapestURL ссылка первого предложения с итоговой минимальной ценой.
  CheapestURL string

  minPrice int64
  maxPrice int64
}

func NewHotelAggregate(offer TourOffer) *HotelAggregate {
  aggregate := &HotelAggregate{
    ID:           offer.HotelID,
    Name:         offer.HotelName,
    Category:     offer.HotelCategory,
    Rating:       offer.HotelRating,
    CheckinDates: set.NewThreadUnsafeSet[string](),
    MealIDs:      set.NewThreadUnsafeSet[string](),
  }
  aggregate.Add(offer)

  return aggregate
}

func (h *HotelAggregate) Add(offer TourOffer) {
  first := len(h.Prices) == 0

  h.Prices = append(h.Prices, offer.Price)
  h.CheckinDates.Add(offer.CheckinDate)
  h.MealIDs.Add(offer.MealID)

  if first {
    h.minPrice, h.maxPrice = offer.Price, offer.Price
    h.MinNights, h.MaxNights = offer.Nights, offer.Nights
    h.CheapestURLs = append(h.CheapestURLs, offer.TourPageURL)
    h.CheapestURL = offer.TourPageURL
    return
  }

  if offer.Price < h.minPrice {
    h.minPrice = offer.Price
    h.CheapestURL = offer.TourPageURL
  }
  if offer.Price > h.maxPrice {
    h.maxPrice = offer.Price
  }
  if offer.Price == h.minPrice {
    h.CheapestURLs = append(h.CheapestURLs, offer.TourPageURL)
  }

  h.MinNights = min(h.MinNights, offer.Nights)
  h.MaxNights = max(h.MaxNights, offer.Nights)
}

func (h *HotelAggregate) MinPrice() int64 {
  return h.minPrice
}

func (h *HotelAggregate) MaxPrice() int64 {
  return h.maxPrice
}

func (h *HotelAggregate) ToursCount() int {
  return len(h.Prices)
}

func (h *HotelAggregate) SortedCheckinDates() []string {
  dates := h.CheckinDates.ToSlice()
  sort.Strings(dates)

  return dates
}

type SearchResult struct {
  // Hotels отсортированы по минимальной цене.
  Hotels      []*HotelAggregate
  OffersCount int
  IsEmpty     bool
  IsUsable    bool
}

func (r *SearchResult) MinPrice() int64 {
  if len(r.Hotels) == 0 {
    return 0
  }
  price := r.Hotels[0].MinPrice()

  for _, hotel := range r.Hotels[1:] {
    price = min(price, hotel.MinPrice())
  }

  return price
}

func (r *SearchResult) AverageRating() float64 {
  if len(r.Hotels) == 0 {
    return 0
  }
  var sum float64

  for _, hotel := range r.Hotels {
    sum += hotel.Rating
  }

  return sum / float64(len(r.Hotels))
}
