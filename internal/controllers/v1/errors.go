package v1

import (
	"errors"
	"net/http"

	"github.com/homeledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrAccessDenied) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

// What-if errors
var (
	errContributionNotSet   = errors.New("the contribution query parameter must be set")
	errContributionInvalid  = errors.New("the contribution query parameter must be a decimal number")
	errContributionNegative = errors.New("the contribution query parameter must not be negative")
)

// Actor errors
var (
	errUserIDInvalid = errors.New("the x-user-id header must be a valid UUID")
)
