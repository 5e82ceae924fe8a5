package http

import (
	"errors"
	"net/http"

	"github.com/enesozmus/betterrest/internal/sleep"
	"github.com/enesozmus/betterrest/pkg/response"
)

// MsgPredictionFailed is the single user-facing message for any model
// failure. The model boundary defines no finer taxonomy.
const MsgPredictionFailed = "there was a problem calculating your bedtime"

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, sleep.ErrPrediction):
		return response.NewHTTPError(http.StatusInternalServerError, MsgPredictionFailed)
	case errors.Is(err, sleep.ErrInvalidWakeTime),
		errors.Is(err, sleep.ErrSleepOutOfRange),
		errors.Is(err, sleep.ErrCoffeeOutOfRange):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
