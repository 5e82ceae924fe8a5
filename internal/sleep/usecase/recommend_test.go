package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/enesozmus/betterrest/internal/sleep"
	"github.com/enesozmus/betterrest/internal/sleep/repository"
	"github.com/enesozmus/betterrest/internal/sleep/usecase"
	"github.com/enesozmus/betterrest/pkg/clock"
)

func TestRecommend(t *testing.T) {
	ctx := context.Background()
	wake := clock.TimeOfDay{Hour: 7, Minute: 0}

	t.Run("Bedtime Is Wake Minus Prediction Exactly", func(t *testing.T) {
		repo := &mockPredictorRepo{
			predictFunc: func(opt repository.PredictSleepOptions) (time.Duration, error) {
				return 29688 * time.Second, nil // 8h14m48s
			},
		}
		uc := usecase.New(repo, &mockLogger{})

		out, err := uc.Recommend(ctx, sleep.RecommendInput{WakeTime: wake, SleepHours: 8, CoffeeCups: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.PredictedSleep != 29688*time.Second {
			t.Errorf("PredictedSleep = %v, want 29688s", out.PredictedSleep)
		}
		// 07:00 − 8h14m48s lands at 22:45 on the previous evening.
		if got := out.Bedtime.String(); got != "22:45" {
			t.Errorf("Bedtime = %s, want 22:45", got)
		}
		if out.WakeTime != wake {
			t.Errorf("WakeTime = %v, want %v", out.WakeTime, wake)
		}
	})

	t.Run("Encoder Passes Seconds Of Day", func(t *testing.T) {
		var seen repository.PredictSleepOptions
		repo := &mockPredictorRepo{
			predictFunc: func(opt repository.PredictSleepOptions) (time.Duration, error) {
				seen = opt
				return 8 * time.Hour, nil
			},
		}
		uc := usecase.New(repo, &mockLogger{})

		_, err := uc.Recommend(ctx, sleep.RecommendInput{WakeTime: wake, SleepHours: 8.25, CoffeeCups: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen.WakeSeconds != 25200 {
			t.Errorf("WakeSeconds = %d, want 25200", seen.WakeSeconds)
		}
		if seen.SleepHours != 8.25 || seen.CoffeeCups != 2 {
			t.Errorf("unexpected features: %+v", seen)
		}
	})

	t.Run("Sleep Out Of Range", func(t *testing.T) {
		uc := usecase.New(&mockPredictorRepo{
			predictFunc: func(opt repository.PredictSleepOptions) (time.Duration, error) {
				t.Error("predictor must not be reached for out-of-range input")
				return 0, nil
			},
		}, &mockLogger{})

		for _, hours := range []float64{3.99, 12.01, -1, 0} {
			_, err := uc.Recommend(ctx, sleep.RecommendInput{WakeTime: wake, SleepHours: hours, CoffeeCups: 1})
			if !errors.Is(err, sleep.ErrSleepOutOfRange) {
				t.Errorf("hours=%v: expected ErrSleepOutOfRange, got %v", hours, err)
			}
		}
	})

	t.Run("Coffee Out Of Range", func(t *testing.T) {
		uc := usecase.New(&mockPredictorRepo{
			predictFunc: func(opt repository.PredictSleepOptions) (time.Duration, error) {
				t.Error("predictor must not be reached for out-of-range input")
				return 0, nil
			},
		}, &mockLogger{})

		for _, cups := range []int{0, 21, -5} {
			_, err := uc.Recommend(ctx, sleep.RecommendInput{WakeTime: wake, SleepHours: 8, CoffeeCups: cups})
			if !errors.Is(err, sleep.ErrCoffeeOutOfRange) {
				t.Errorf("cups=%d: expected ErrCoffeeOutOfRange, got %v", cups, err)
			}
		}
	})

	t.Run("Range Boundaries Accepted", func(t *testing.T) {
		uc := usecase.New(&mockPredictorRepo{}, &mockLogger{})
		for _, in := range []sleep.RecommendInput{
			{WakeTime: wake, SleepHours: 4, CoffeeCups: 1},
			{WakeTime: wake, SleepHours: 12, CoffeeCups: 20},
		} {
			if _, err := uc.Recommend(ctx, in); err != nil {
				t.Errorf("input %+v: unexpected error: %v", in, err)
			}
		}
	})

	t.Run("Predictor Failure Maps To ErrPrediction", func(t *testing.T) {
		uc := usecase.New(&mockPredictorRepo{
			predictFunc: func(opt repository.PredictSleepOptions) (time.Duration, error) {
				return 0, repository.ErrFailedToPredict
			},
		}, &mockLogger{})

		out, err := uc.Recommend(ctx, sleep.RecommendInput{WakeTime: wake, SleepHours: 8, CoffeeCups: 1})
		if !errors.Is(err, sleep.ErrPrediction) {
			t.Fatalf("expected ErrPrediction, got %v", err)
		}
		// No partial result on failure.
		if out != (sleep.RecommendOutput{}) {
			t.Errorf("expected zero output on failure, got %+v", out)
		}
	})
}

func TestModelInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("Passthrough", func(t *testing.T) {
		uc := usecase.New(&mockPredictorRepo{
			infoFunc: func() (repository.ModelInfo, error) {
				return repository.ModelInfo{
					Name:     "sleepcalculator",
					Version:  "1.0.0",
					Target:   "sleep_seconds",
					Source:   "assets/sleepcalculator.json",
					Features: []string{"wake_seconds", "sleep_hours", "coffee_cups"},
				}, nil
			},
		}, &mockLogger{})

		out, err := uc.ModelInfo(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Name != "sleepcalculator" || len(out.Features) != 3 {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Failure Maps To ErrPrediction", func(t *testing.T) {
		uc := usecase.New(&mockPredictorRepo{
			infoFunc: func() (repository.ModelInfo, error) {
				return repository.ModelInfo{}, errors.New("boom")
			},
		}, &mockLogger{})

		if _, err := uc.ModelInfo(ctx); !errors.Is(err, sleep.ErrPrediction) {
			t.Errorf("expected ErrPrediction, got %v", err)
		}
	})
}
