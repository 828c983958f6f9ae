package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate       *validator.Validate
	alphaSpaceOnly = regexp.MustCompile(`^[a-zA-Z ]+$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpaceOnly.MatchString(fl.Field().String())
	})
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// ValidCustomerName requires at least two characters, letters and spaces only.
func ValidCustomerName(name string) bool {
	return validate.Var(name, "required,min=2,alphaspace") == nil
}

func ValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
