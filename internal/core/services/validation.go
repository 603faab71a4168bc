package services

import (
	"fmt"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// requestValidator checks request DTOs with the same `binding` tags gin uses,
// so direct service callers get the same guarantees as HTTP callers.
var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func validateRequest(req any) error {
	if err := requestValidator.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, apperrors.ErrNotFound)
}
