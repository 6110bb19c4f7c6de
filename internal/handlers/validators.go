package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// registerCustomValidations installs request-binding validations on gin's
// shared validator engine. Safe to call more than once.
func registerCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("approvable_entity", func(fl validator.FieldLevel) bool {
		return domain.EntityType(fl.Field().String()).IsApprovable()
	})
}
