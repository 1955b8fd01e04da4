package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface.
type CustomValidator struct {
	validate *validator.Validate
}

// NewValidator creates the validator used for all request payloads.
func NewValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks struct tags and reports failures as a 400.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
