package http

import (
	"github.com/gin-gonic/gin"

	"github.com/enesozmus/betterrest/internal/sleep"
	"github.com/enesozmus/betterrest/pkg/log"
)

// Handler is the public interface for the sleep HTTP delivery layer.
type Handler interface {
	Recommend(c *gin.Context)
	ModelInfo(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc sleep.UseCase
}

// New creates a new HTTP handler for the sleep domain.
func New(l log.Logger, uc sleep.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
