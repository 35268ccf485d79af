package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"construction-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	_ = v.RegisterValidation("sort_direction", validateSortDirection)
	_ = v.RegisterValidation("period_month", validatePeriodMonth)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateDecimalAmount accepts any string the decimal package can parse
func validateDecimalAmount(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return false
	}
	_, err := decimal.NewFromString(value)
	return err == nil
}

// validateNonNegativeAmount rejects amounts below zero; unparsable input is
// left to decimal_amount
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.String:
		amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		if err != nil {
			return true
		}
		return !amount.IsNegative()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() >= 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() >= 0
	default:
		return false
	}
}

// validateCalendarDate accepts YYYY-MM-DD or an RFC 3339 timestamp
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := models.ParseCalendarDate(fl.Field().String())
	return err == nil
}

func validateSortDirection(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "", "asc", "desc":
		return true
	default:
		return false
	}
}

// validatePeriodMonth accepts calendar months 1 through 12
func validatePeriodMonth(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		m := fl.Field().Int()
		return m >= 1 && m <= 12
	default:
		return false
	}
}

// DescribeFieldError converts a validator.FieldError to a human-readable message
func DescribeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "decimal_amount":
		return "must be a numeric amount"
	case "non_negative_amount":
		return "must not be negative"
	case "calendar_date":
		return "must be a calendar date (YYYY-MM-DD)"
	case "sort_direction":
		return "must be asc or desc"
	case "period_month":
		return "must be a month between 1 and 12"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
