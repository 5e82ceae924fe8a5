package sleep

import (
	"time"

	"github.com/enesozmus/betterrest/pkg/clock"
)

// Input constraints and defaults. The form and the API enforce the same
// ranges; values outside them never reach the predictor.
const (
	DefaultWakeTime   = "07:00"
	DefaultSleepHours = 8.0
	DefaultCoffeeCups = 1

	MinSleepHours  = 4.0
	MaxSleepHours  = 12.0
	SleepHoursStep = 0.25

	MinCoffeeCups = 1
	MaxCoffeeCups = 20
)

// --- UseCase Inputs ---

type RecommendInput struct {
	WakeTime   clock.TimeOfDay
	SleepHours float64
	CoffeeCups int
}

// --- UseCase Outputs ---

type RecommendOutput struct {
	WakeTime       clock.TimeOfDay
	Bedtime        clock.TimeOfDay
	PredictedSleep time.Duration
}

type ModelInfoOutput struct {
	Name     string
	Version  string
	Target   string
	Source   string
	Features []string
}
