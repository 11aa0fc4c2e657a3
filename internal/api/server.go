package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/safarind/umrah-marketplace-api/internal/api/handler"
	"github.com/safarind/umrah-marketplace-api/internal/api/handler/router"
	"github.com/safarind/umrah-marketplace-api/internal/config"
	"github.com/safarind/umrah-marketplace-api/internal/scheduler"
	"github.com/safarind/umrah-marketplace-api/internal/usecases/booking"
	"github.com/safarind/umrah-marketplace-api/internal/usecases/discovery"
	"github.com/safarind/umrah-marketplace-api/pkg/background"
	"github.com/safarind/umrah-marketplace-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
	runner     *background.Runner
}

func New(
	cfg *config.Config,
	discoveryService discovery.DiscoveryService,
	bookingService booking.BookingService,
	expirySweepService *scheduler.ExpirySweepService,
	runner *background.Runner,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Packages(discoveryService, cfg.Auth.Secret)...),
		router.WithRoutes(handler.Bookings(bookingService)...),
		router.WithRoutes(handler.CronJobs(expirySweepService, cfg.Auth.Secret)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
		runner: runner,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("error while running server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	// Give in-flight best-effort writes a chance to land before exit.
	finished := make(chan struct{})
	go func() {
		s.runner.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		logrus.Info("background writes drained")
	case <-ctx.Done():
		logrus.Warn("shutdown deadline reached with background writes pending")
	}

	return nil
}
