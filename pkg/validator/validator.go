package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
	pinRegex   = regexp.MustCompile(`^\d{6}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Indian mobile number: 10 digits, first digit 6-9.
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	// Postal PIN code: exactly 6 digits.
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pinRegex.MatchString(fl.Field().String())
	})

	return v
}

// ValidateDraft runs struct validation and returns per-field messages keyed
// by the form field name. A nil map means the draft is valid.
func ValidateDraft(draft any) map[string]string {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		key := getFieldKey(fieldError.Field())
		fields[key] = getFieldErrorMessage(fieldError)
	}
	return fields
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}
		return fmt.Sprintf("%s is required", field)
	case "mobile":
		return "Invalid phone number"
	case "pincode":
		return "Invalid PIN code"
	case "oneof":
		return fmt.Sprintf("%s is not a valid option", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

var requiredMessages = map[string]string{
	"FirstName":    "First name is required",
	"LastName":     "Last name is required",
	"AddressLine1": "Address is required",
	"Phone":        "Invalid phone number",
	"Pin":          "Invalid PIN code",
	"Name":         "Name is required",
	"Code":         "Code is required",
}

func getFieldKey(field string) string {
	fieldKeys := map[string]string{
		"FirstName":    "firstName",
		"LastName":     "lastName",
		"Gender":       "gender",
		"Phone":        "phone",
		"AddressLine1": "addressLine1",
		"AddressLine2": "addressLine2",
		"Pin":          "pin",
		"District":     "district",
		"State":        "state",
		"Name":         "name",
		"Department":   "department",
		"Code":         "code",
		"Profile":      "profile",
	}

	if key, ok := fieldKeys[field]; ok {
		return key
	}
	return field
}
