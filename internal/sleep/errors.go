package sleep

import "errors"

var (
	// ErrPrediction is the single opaque failure class for the model
	// boundary: load failures and prediction failures both map here.
	ErrPrediction = errors.New("prediction failed")

	ErrInvalidWakeTime  = errors.New("wake time must be a valid HH:MM value")
	ErrSleepOutOfRange  = errors.New("desired sleep must be between 4 and 12 hours")
	ErrCoffeeOutOfRange = errors.New("coffee intake must be between 1 and 20 cups")
)
