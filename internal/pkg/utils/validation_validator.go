package utils

import (
	"batch-schedule-service/internal/app/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("time_of_day", validateTimeOfDay)
	validate.RegisterValidation("time_field", validateTimeField)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	_, err := models.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func validateTimeField(fl validator.FieldLevel) bool {
	return models.TimeField(fl.Field().String()).IsValid()
}
