package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
	"github.com/mahlalem-eng/themosthigh-backend/internal/service"
)

// errorJSON maps service and store errors onto the response codes the
// storefront expects: 404 for missing records, 400 for bad input, 401 for
// bad credentials, 500 otherwise.
func errorJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrCartItemNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrApplicationNotFound),
		errors.Is(err, repository.ErrEFTOrderNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		return c.JSON(404, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrAlreadyApproved),
		errors.Is(err, service.ErrDuplicateCheckout):
		return c.JSON(400, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(401, map[string]string{"error": err.Error()})
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.JSON(400, map[string]string{"error": err.Error()})
	}

	return c.JSON(500, map[string]string{"error": err.Error()})
}
