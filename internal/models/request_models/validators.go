package request_models

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"wayfare/internal/models/trip_models"
)

// RegisterCustomValidators hooks the enum checks into gin's binding
// validator. Call once at startup before the engine serves.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("viewtype", func(fl validator.FieldLevel) bool {
		return trip_models.ViewType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("mobility", func(fl validator.FieldLevel) bool {
		return trip_models.MobilityLevel(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("timepref", func(fl validator.FieldLevel) bool {
		return trip_models.TimePreference(fl.Field().String()).Valid()
	})
}
