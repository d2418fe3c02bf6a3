package utils

import (
	"main/model"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

func InitValidator() {
	Validate = validator.New()
	RegisterCustomValidators(Validate)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterCustomValidators(v)
	}
}

func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("timeformat", ValidateClockRule)
	v.RegisterValidation("weekday", ValidateWeekdayRule)
}

// ValidateClockRule accepts 24-hour HH:MM clock times.
func ValidateClockRule(fl validator.FieldLevel) bool {
	return clockPattern.MatchString(fl.Field().String())
}

// ValidateWeekdayRule accepts the short weekday labels used by schedules.
func ValidateWeekdayRule(fl validator.FieldLevel) bool {
	return model.IsValidWeekday(fl.Field().String())
}
