package artifact

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/enesozmus/betterrest/internal/sleep/repository"
)

// Feature names must match the artifact's coefficient schema.
const (
	featureWakeSeconds = "wake_seconds"
	featureSleepHours  = "sleep_hours"
	featureCoffeeCups  = "coffee_cups"
)

// maxPlausibleSleep guards against a corrupt artifact producing a duration
// that cannot be placed on a 24h dial.
const maxPlausibleSleep = 24 * time.Hour

// PredictSleep evaluates the model for the given features. Identical feature
// triples within the cache TTL are served from the memo cache; the form
// recomputes on every input change, so repeats are common. The options struct
// itself is the cache key, so distinct inputs never share an entry.
func (r *implRepository) PredictSleep(ctx context.Context, opt repository.PredictSleepOptions) (time.Duration, error) {
	if sec, ok := r.cache.Get(opt); ok {
		return secondsToDuration(sec), nil
	}

	sec, err := r.model.Predict(map[string]float64{
		featureWakeSeconds: float64(opt.WakeSeconds),
		featureSleepHours:  opt.SleepHours,
		featureCoffeeCups:  float64(opt.CoffeeCups),
	})
	if err != nil {
		r.l.Errorf(ctx, "artifact.PredictSleep: %v", err)
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToPredict, err)
	}

	d := secondsToDuration(sec)
	if d <= 0 || d >= maxPlausibleSleep {
		r.l.Errorf(ctx, "artifact.PredictSleep: implausible prediction %v", d)
		return 0, fmt.Errorf("%w: implausible predicted duration %v", repository.ErrFailedToPredict, d)
	}

	r.cache.Add(opt, sec)
	return d, nil
}

// ModelInfo returns metadata about the loaded artifact.
func (r *implRepository) ModelInfo(ctx context.Context) (repository.ModelInfo, error) {
	return repository.ModelInfo{
		Name:     r.model.Name,
		Version:  r.model.Version,
		Target:   r.model.Target,
		Source:   r.source,
		Features: r.model.Features(),
	}, nil
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(math.Round(sec)) * time.Second
}
