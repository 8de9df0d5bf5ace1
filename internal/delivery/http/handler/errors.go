package handler

import (
	"errors"
	"net/http"

	"doctor-referral-directory/internal/usecase"
	"doctor-referral-directory/pkg/response"
)

// writeUsecaseError maps the usecase error taxonomy onto HTTP statuses.
// Store errors are reported with the generic fallback message; internals are
// never leaked to the caller.
func writeUsecaseError(w http.ResponseWriter, err error, fallback string) {
	var notFound *usecase.NotFoundError
	var validation *usecase.ValidationError

	switch {
	case errors.As(err, &notFound):
		response.NotFound(w, notFound.Error())
	case errors.As(err, &validation):
		response.Error(w, http.StatusBadRequest, validation.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
