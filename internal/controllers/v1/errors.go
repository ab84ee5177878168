package v1

import (
	"errors"
	"net/http"

	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
)

// httpError is used for error responses that do not contain resources.
type httpError struct {
	Error string `json:"error"`
}

// status translates an error into the status code for the response.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Goal errors
var (
	errRevertConfirmation = errors.New("the confirmation for reverting the goal was incorrect")
)

// Assistant errors
var (
	errTextNotSet  = errors.New("the text field must be set")
	errTopicNotSet = errors.New("the topic field must be set")
)
