package http

import (
	"math"
	"time"

	"github.com/enesozmus/betterrest/internal/sleep"
	"github.com/enesozmus/betterrest/pkg/clock"
)

// --- Request DTOs ---

type recommendReq struct {
	WakeTime   string  `json:"wake_time"   binding:"required"                example:"07:00"`
	SleepHours float64 `json:"sleep_hours" binding:"required,min=4,max=12"   example:"8.0"`
	CoffeeCups int     `json:"coffee_cups" binding:"required,min=1,max=20"   example:"1"`
}

func (r recommendReq) validate() error {
	if _, err := clock.Parse(r.WakeTime); err != nil {
		return sleep.ErrInvalidWakeTime
	}
	return nil
}

func (r recommendReq) toInput() sleep.RecommendInput {
	// validate() already checked the wake time; Parse cannot fail here.
	wake, _ := clock.Parse(r.WakeTime)
	return sleep.RecommendInput{
		WakeTime:   wake,
		SleepHours: r.SleepHours,
		CoffeeCups: r.CoffeeCups,
	}
}

// --- Response DTOs ---

type recommendResp struct {
	Bedtime               string  `json:"bedtime"                 example:"22:45"`
	WakeTime              string  `json:"wake_time"               example:"07:00"`
	PredictedSleepHours   float64 `json:"predicted_sleep_hours"   example:"8.25"`
	PredictedSleepSeconds int     `json:"predicted_sleep_seconds" example:"29688"`
}

func (h *handler) newRecommendResp(out sleep.RecommendOutput) recommendResp {
	seconds := int(out.PredictedSleep.Seconds())
	return recommendResp{
		Bedtime:               out.Bedtime.String(),
		WakeTime:              out.WakeTime.String(),
		PredictedSleepHours:   roundHours(out.PredictedSleep),
		PredictedSleepSeconds: seconds,
	}
}

type modelResp struct {
	Name     string   `json:"name"     example:"sleepcalculator"`
	Version  string   `json:"version"  example:"1.0.0"`
	Target   string   `json:"target"   example:"sleep_seconds"`
	Source   string   `json:"source"   example:"assets/sleepcalculator.json"`
	Features []string `json:"features"`
}

func (h *handler) newModelResp(out sleep.ModelInfoOutput) modelResp {
	return modelResp{
		Name:     out.Name,
		Version:  out.Version,
		Target:   out.Target,
		Source:   out.Source,
		Features: out.Features,
	}
}

// roundHours reports a duration as hours with two decimals.
func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
