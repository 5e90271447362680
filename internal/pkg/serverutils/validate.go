package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and maps the first violation to
// a 400 ApiError. Chat payloads use MapChatValidationError instead, which
// preserves the per-field error taxonomy.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return NewApiError(fiber.StatusBadRequest,
				fmt.Sprintf("Ungültige Anfrage: Feld '%s' (%s)", first.Field(), first.Tag()))
		}
		return NewApiError(fiber.StatusBadRequest, "Ungültige Anfrage")
	}
	return nil
}

// Validator exposes the shared instance for callers that need to inspect
// raw validation errors.
func Validator() *validator.Validate {
	return validate
}

// MapChatValidationError translates a chat payload violation into its fixed
// caller-facing error. Violations are checked in a fixed priority order so
// a payload failing several checks always yields the same message.
func MapChatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return ErrMalformedInput
	}

	match := func(field, tag string) bool {
		for _, v := range verrs {
			if v.Field() == field && v.Tag() == tag {
				return true
			}
		}
		return false
	}

	switch {
	case match("Messages", "required"):
		return ErrMalformedInput
	case match("Messages", "max"):
		return ErrTooManyMessages
	case match("Role", "required"), match("Role", "oneof"):
		return ErrInvalidRole
	case match("Content", "required"):
		return ErrInvalidContent
	case match("Content", "max"):
		return ErrContentTooLong
	default:
		return ErrMalformedInput
	}
}
