package usecase

import (
	"context"

	"github.com/enesozmus/betterrest/internal/sleep"
	repo "github.com/enesozmus/betterrest/internal/sleep/repository"
)

// Recommend converts the inputs into model features, asks the predictor for
// the sleep the user actually needs, and subtracts that from the wake time.
func (uc *implUseCase) Recommend(ctx context.Context, input sleep.RecommendInput) (sleep.RecommendOutput, error) {
	if input.SleepHours < sleep.MinSleepHours || input.SleepHours > sleep.MaxSleepHours {
		return sleep.RecommendOutput{}, sleep.ErrSleepOutOfRange
	}
	if input.CoffeeCups < sleep.MinCoffeeCups || input.CoffeeCups > sleep.MaxCoffeeCups {
		return sleep.RecommendOutput{}, sleep.ErrCoffeeOutOfRange
	}

	predicted, err := uc.repo.PredictSleep(ctx, repo.PredictSleepOptions{
		WakeSeconds: input.WakeTime.SecondsOfDay(),
		SleepHours:  input.SleepHours,
		CoffeeCups:  input.CoffeeCups,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Recommend PredictSleep: %v", err)
		// Single opaque failure class: callers never see partial results.
		return sleep.RecommendOutput{}, sleep.ErrPrediction
	}

	return sleep.RecommendOutput{
		WakeTime:       input.WakeTime,
		Bedtime:        input.WakeTime.Sub(predicted),
		PredictedSleep: predicted,
	}, nil
}
