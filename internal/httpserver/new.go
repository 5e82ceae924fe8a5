package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/enesozmus/betterrest/internal/middleware"
	"github.com/enesozmus/betterrest/internal/sleep/repository/artifact"
	"github.com/enesozmus/betterrest/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Sleep domain
	model      artifact.Config
	middleware middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// Model is the regression artifact the sleep domain serves.
	Model artifact.Config

	// Middleware holds rate-limit settings.
	Middleware middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		model:       cfg.Model,
		middleware:  cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.model.Path == "" {
		return errors.New("model artifact path is required")
	}
	return nil
}
