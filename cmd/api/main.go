package main

import (
	"context"
	"time"

	"github.com/safarind/umrah-marketplace-api/infrastructure/cache"
	"github.com/safarind/umrah-marketplace-api/infrastructure/database/postgres"
	"github.com/safarind/umrah-marketplace-api/infrastructure/repository"
	"github.com/safarind/umrah-marketplace-api/internal/api"
	"github.com/safarind/umrah-marketplace-api/internal/config"
	"github.com/safarind/umrah-marketplace-api/internal/scheduler"
	"github.com/safarind/umrah-marketplace-api/internal/usecases/booking"
	"github.com/safarind/umrah-marketplace-api/internal/usecases/discovery"
	"github.com/safarind/umrah-marketplace-api/internal/usecases/whatsapp"
	"github.com/safarind/umrah-marketplace-api/pkg/background"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	packageRepo := repository.NewPackageRepository(pgConn)
	bookingLogRepo := repository.NewBookingLogRepository(pgConn)
	settingsRepo := repository.NewSettingsRepository(pgConn)

	runner := background.NewRunner(time.Duration(cfg.Booking.BackgroundWriteTimeoutSeconds) * time.Second)
	prefillCache := cache.NewPrefillCache()
	composer := whatsapp.NewComposer(cfg.WhatsApp.SendBaseURL, cfg.App.SiteURL)

	discoveryService := discovery.NewService(packageRepo, settingsRepo, runner)
	bookingService := booking.NewService(
		packageRepo,
		bookingLogRepo,
		settingsRepo,
		prefillCache,
		composer,
		runner,
	)

	expirySweepService := scheduler.NewExpirySweepService(packageRepo, cfg)
	if err := expirySweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting expiry sweep scheduler")
	}

	server, err := api.New(
		cfg,
		discoveryService,
		bookingService,
		expirySweepService,
		runner,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the global log format
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens and verifies the database connection
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
