package v1

import (
	"errors"
	"net/http"

	"github.com/chandran2006/saveup-backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errUserIDParameter = errors.New("the userId parameter must be set")
)

// Receipt scan errors
var (
	errNoFilePost = errors.New("you must send an image file to this endpoint")
)
