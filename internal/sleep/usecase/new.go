package usecase

import (
	"github.com/enesozmus/betterrest/internal/sleep/repository"
	"github.com/enesozmus/betterrest/pkg/log"
)

// implUseCase is the private implementation of sleep.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new sleep UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
