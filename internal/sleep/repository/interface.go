package repository

import (
	"context"
	"time"
)

// Repository is the composed interface for the sleep domain's external
// collaborators. The only collaborator is the pre-trained model.
type Repository interface {
	PredictorRepository
}

// PredictorRepository is the boundary around the regression model artifact.
// Implementations are read-only: the artifact is loaded once and never
// mutated.
type PredictorRepository interface {
	PredictSleep(ctx context.Context, opt PredictSleepOptions) (time.Duration, error)
	ModelInfo(ctx context.Context) (ModelInfo, error)
}
