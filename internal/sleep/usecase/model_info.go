package usecase

import (
	"context"

	"github.com/enesozmus/betterrest/internal/sleep"
)

// ModelInfo exposes the loaded artifact's metadata.
func (uc *implUseCase) ModelInfo(ctx context.Context) (sleep.ModelInfoOutput, error) {
	info, err := uc.repo.ModelInfo(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ModelInfo: %v", err)
		return sleep.ModelInfoOutput{}, sleep.ErrPrediction
	}

	return sleep.ModelInfoOutput{
		Name:     info.Name,
		Version:  info.Version,
		Target:   info.Target,
		Source:   info.Source,
		Features: info.Features,
	}, nil
}
