package sleep

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Recommend derives a bedtime from wake time, target sleep, and caffeine
	// intake via the pre-trained regression model.
	Recommend(ctx context.Context, input RecommendInput) (RecommendOutput, error)

	// ModelInfo describes the loaded model artifact.
	ModelInfo(ctx context.Context) (ModelInfoOutput, error)
}
