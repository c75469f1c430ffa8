package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var errMsgs []string
		for _, err := range err.(validator.ValidationErrors) {
			errMsgs = append(errMsgs, fmt.Sprintf(
				"Field: %s, Tag: %s, Param: %s", err.Field(), err.Tag(), err.Param(),
			))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}

// ValidateEmailSyntax runs only the RFC syntax check, for values that
// arrive outside of a tagged struct.
func ValidateEmailSyntax(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
