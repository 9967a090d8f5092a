package models

import (
  "time"

  "github.com/ushakovn/tourwatch/pkg/validator"
)

const DateLayout = "2006-01-02"

type SearchParams struct {
  Countries       []string    `json:"countries" validate:"required,min=1,dive,required"`
  DepartureCity   string      `json:"departure_city"`
  Resorts         []string    `json:"resorts"`
  Meals           []string    `json:"meals"`
  Adults          *int        `json:"adults" validate:"required,gte=1"`
  Children        *int        `json:"children" validate:"omitempty,gte=0"`
  Infants         *int        `json:"infants" validate:"omitempty,gte=0"`
  Nights          *NightRange `json:"nights"`
  HotelCategories []int       `json:"hotel_categories" validate:"omitempty,dive,min=1,max=5"`
  CheckIn         *DateRange  `json:"check_in"`
}

// NightRange не проверяет порядок границ.
type NightRange struct {
  From int `json:"from" validate:"gte=0"`
  To   int `json:"to" validate:"gte=0"`
}

type DateRange struct {
  From time.Time `json:"from" validate:"required"`
  To   time.Time `json:"to" validate:"required,gtefield=From"`
}

func (p *SearchParams) Validate() error {
  return validator.Struct(p)
}
