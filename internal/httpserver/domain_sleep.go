package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/enesozmus/betterrest/internal/middleware"
	sleepHTTP "github.com/enesozmus/betterrest/internal/sleep/delivery/http"
	"github.com/enesozmus/betterrest/internal/sleep/repository/artifact"
	sleepUC "github.com/enesozmus/betterrest/internal/sleep/usecase"
)

// setupSleepDomain initializes the sleep domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(cfg, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/..."), h, mw)
func (srv *HTTPServer) setupSleepDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository — refuses to start with an unusable model artifact.
	repo, err := artifact.New(srv.model, srv.l)
	if err != nil {
		return err
	}

	// 2. UseCase
	uc := sleepUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := sleepHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/sleep/*
	sleepHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Sleep domain registered with model %q", srv.model.Path)
	return nil
}
