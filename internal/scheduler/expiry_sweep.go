// Package scheduler contains the optional background maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/safarind/umrah-marketplace-api/infrastructure/repository"
	"github.com/safarind/umrah-marketplace-api/internal/config"
	"github.com/sirupsen/logrus"
)

// ExpirySweepService deactivates departed packages in bulk on a schedule.
// It is a pure optimization: the lazy expiry check on every read keeps
// listing responses correct whether or not this sweep ever runs.
type ExpirySweepService struct {
	scheduler           *gocron.Scheduler
	packageRepo         repository.PackageRepository
	config              config.ExpirySweep
	sweepRunning        bool
	sweepMutex          sync.Mutex
	lastSweepStartedAt  time.Time
	lastSweepFinishedAt time.Time
}

func NewExpirySweepService(
	packageRepo repository.PackageRepository,
	cfg *config.Config,
) *ExpirySweepService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.ExpirySweep.CronSchedule,
		"enabled":       cfg.ExpirySweep.Enabled,
	}).Info("expiry sweep configuration loaded")

	return &ExpirySweepService{
		scheduler:   scheduler,
		packageRepo: packageRepo,
		config:      cfg.ExpirySweep,
	}
}

func (s *ExpirySweepService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("expiry sweep disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting expiry sweep scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSweep(context.Background()); err != nil {
			logrus.WithError(err).Error("expiry sweep run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("error scheduling expiry sweep: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping expiry sweep scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSweep deactivates every active package whose departure date has
// passed. Safe to trigger manually while a scheduled run is in flight;
// the second invocation is skipped.
func (s *ExpirySweepService) RunSweep(ctx context.Context) error {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	if s.sweepRunning {
		logrus.Warn("expiry sweep already running")
		return nil
	}

	s.sweepRunning = true
	s.lastSweepStartedAt = time.Now()
	defer func() {
		s.sweepRunning = false
		s.lastSweepFinishedAt = time.Now()
	}()

	logrus.Info("starting expiry sweep")

	packages, err := s.packageRepo.ListPackages(ctx, true)
	if err != nil {
		return fmt.Errorf("error listing packages for expiry sweep: %w", err)
	}

	now := time.Now()
	var deactivated, failed int
	for _, pkg := range packages {
		if !pkg.IsActive || !pkg.Departed(now) {
			continue
		}

		if err := s.packageRepo.Deactivate(ctx, pkg.ID); err != nil {
			// Leave it for the lazy check on the next read.
			logrus.WithError(err).WithField("package_id", pkg.ID).Warn("could not deactivate departed package")
			failed++
			continue
		}
		deactivated++
	}

	logrus.WithFields(logrus.Fields{
		"deactivated": deactivated,
		"failed":      failed,
	}).Info("expiry sweep finished")

	return nil
}

// Status reports the sweep state for the admin cron endpoint.
func (s *ExpirySweepService) Status() map[string]interface{} {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	return map[string]interface{}{
		"enabled":          s.config.Enabled,
		"cron_schedule":    s.config.CronSchedule,
		"running":          s.sweepRunning,
		"last_started_at":  s.lastSweepStartedAt,
		"last_finished_at": s.lastSweepFinishedAt,
	}
}
