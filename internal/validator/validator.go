// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"spendwise/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_date", validateExpenseDate)
		_ = v.RegisterValidation("category_filter", validateCategoryFilter)
	}
}

// validateExpenseDate accepts plain calendar dates in YYYY-MM-DD form.
func validateExpenseDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// validateCategoryFilter accepts "All" or any catalog category name.
func validateCategoryFilter(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "All" || models.ValidCategoryName(value)
}
