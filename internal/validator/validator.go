// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fintrack/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

var paymentMethods = map[string]bool{
	"cash":          true,
	"card":          true,
	"credit_card":   true,
	"debit_card":    true,
	"bank_transfer": true,
	"upi":           true,
	"wallet":        true,
	"cheque":        true,
	"other":         true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn adds the custom tags to v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("hex_color", validateHexColor)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("category_type", validateCategoryType)
	_ = v.RegisterValidation("investment_kind", validateInvestmentKind)
	_ = v.RegisterValidation("payment_method", validatePaymentMethod)
	_ = v.RegisterValidation("recurrence_frequency", validateRecurrenceFrequency)
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

func validateCategoryType(fl validator.FieldLevel) bool {
	return models.CategoryType(fl.Field().String()).Valid()
}

func validateInvestmentKind(fl validator.FieldLevel) bool {
	switch models.InvestmentKind(fl.Field().String()) {
	case models.InvestmentKindAsset, models.InvestmentKindLiability:
		return true
	}
	return false
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return paymentMethods[fl.Field().String()]
}

func validateRecurrenceFrequency(fl validator.FieldLevel) bool {
	switch models.RecurrenceFrequency(fl.Field().String()) {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly:
		return true
	}
	return false
}
