package serverutils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks a request DTO against its validate tags and returns
// a 400 AppError naming the first failing field.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			return NewAppError(fiber.StatusBadRequest,
				fmt.Sprintf("Field '%s' failed on the '%s' rule", fieldErr.Field(), fieldErr.Tag()))
		}
	}
	return WrapAppError(fiber.StatusInternalServerError, "Invalid validation target", err)
}
