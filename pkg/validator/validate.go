package validator

import (
  playground "github.com/go-playground/validator/v10"
)

var validate = playground.New(playground.WithRequiredStructEnabled())

func Struct(value any) error {
  return validate.Struct(value)
}
