// Package http serves the account API over echo.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"qkart/config"
	"qkart/internal/delivery"
	httpmiddleware "qkart/internal/delivery/http/middleware"
	"qkart/internal/delivery/http/router"
	"qkart/internal/delivery/middleware"
	"qkart/internal/domain/lifecycle"
	"qkart/internal/errors"
	"qkart/internal/infra/validation"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	Validator       *validation.Validator
	RequestID       *middleware.RequestIDMiddleware
	AccessLog       *middleware.LoggerMiddleware
	ErrorMiddleware *httpmiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewEcho assembles the echo instance with middleware and routes.
func NewEcho(params HTTPParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = params.Validator
	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	e.Use(params.RequestID.Process)
	e.Use(params.AccessLog.Handle)
	e.Use(echomiddleware.Recover())
	if limit := params.Config.HTTP.MaxRequestBodySize; limit != "" {
		e.Use(echomiddleware.BodyLimit(limit))
	}

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

// NewServer builds the HTTP delivery and registers its shutdown hook.
func NewServer(params HTTPParams) delivery.Delivery {
	e := NewEcho(params)

	timeouts := params.Config.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: e,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
