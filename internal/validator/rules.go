package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/megane-nerdo/skillhubnext/internal/models"
)

// registerCustomRules installs domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are the job of 'required'
	}
	return models.ValidRole(value)
}
