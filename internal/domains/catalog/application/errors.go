package application

import (
	"errors"
	"unicode/utf8"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/domain"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/ports"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/shared/apierr"
)

var errProductNotFound = apierr.NotFound("Product not found")

// validateName keeps the presence check strictly before the length check so
// an empty name is a bad request, never an unprocessable entity.
func validateName(name string) error {
	if name == "" {
		return apierr.BadRequest(`"name" is required`)
	}
	if utf8.RuneCountInString(name) < domain.MinNameLength {
		return apierr.UnprocessableEntity(`"name" length must be at least 5 characters long`)
	}
	return nil
}

func mapError(err error) error {
	if errors.Is(err, ports.ErrNotFound) {
		return errProductNotFound
	}
	return err
}
