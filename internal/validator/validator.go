// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("filter_type", validateFilterType)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

// filter_type additionally accepts the "All" meta-value used by the
// transactions screen filter chips.
func validateFilterType(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "", "all", "income", "expense":
		return true
	}
	return false
}
