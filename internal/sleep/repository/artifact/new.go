// Package artifact implements the predictor repository on top of a JSON
// regression artifact on disk.
package artifact

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/enesozmus/betterrest/internal/sleep/repository"
	"github.com/enesozmus/betterrest/pkg/log"
	"github.com/enesozmus/betterrest/pkg/regress"
)

// Config holds construction parameters for the artifact-backed repository.
type Config struct {
	// Path to the JSON model artifact.
	Path string

	// CacheSize and CacheTTL bound the prediction memo cache. Zero values
	// fall back to defaults.
	CacheSize int
	CacheTTL  time.Duration
}

const (
	defaultCacheSize = 1024
	defaultCacheTTL  = 10 * time.Minute
)

type implRepository struct {
	model  *regress.Model
	source string
	cache  *expirable.LRU[repository.PredictSleepOptions, float64]
	l      log.Logger
}

// New loads the model artifact and returns a Repository backed by it.
// A load failure is returned immediately so the caller can refuse to start
// serving with no usable model.
func New(cfg Config, l log.Logger) (repository.Repository, error) {
	model, err := regress.Load(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &implRepository{
		model:  model,
		source: cfg.Path,
		cache:  expirable.NewLRU[repository.PredictSleepOptions, float64](size, nil, ttl),
		l:      l,
	}, nil
}
