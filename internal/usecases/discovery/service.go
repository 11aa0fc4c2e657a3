// Package discovery orders the public package listing: lazy expiry of
// departed packages, then tiered ranking driven by admin settings.
package discovery

import (
	"context"
	"time"

	"github.com/safarind/umrah-marketplace-api/infrastructure/repository"
	"github.com/safarind/umrah-marketplace-api/internal/domain"
	"github.com/safarind/umrah-marketplace-api/pkg/background"
	"github.com/safarind/umrah-marketplace-api/pkg/log"
)

type DiscoveryService interface {
	ListPackages(ctx context.Context, opts ListOptions) ([]*domain.Package, error)
	RankingSettings(ctx context.Context) domain.RankingSettings
}

// ListOptions controls the listing view. IncludeInactive is reserved for
// administrative surfaces; the public listing never sets it. A zero AsOf
// means "today".
type ListOptions struct {
	IncludeInactive bool
	AsOf            time.Time
}

type Service struct {
	packageRepo  repository.PackageRepository
	settingsRepo repository.SettingsRepository
	runner       *background.Runner
	now          func() time.Time
}

func NewService(
	packageRepo repository.PackageRepository,
	settingsRepo repository.SettingsRepository,
	runner *background.Runner,
) *Service {
	return &Service{
		packageRepo:  packageRepo,
		settingsRepo: settingsRepo,
		runner:       runner,
		now:          time.Now,
	}
}

// ListPackages runs the full discovery pipeline: fetch, lazy expiry,
// visibility filter, rank.
func (s *Service) ListPackages(ctx context.Context, opts ListOptions) ([]*domain.Package, error) {
	packages, err := s.packageRepo.ListPackages(ctx, opts.IncludeInactive)
	if err != nil {
		return nil, err
	}

	now := s.now()
	packages = s.Reconcile(ctx, packages, now)

	if !opts.IncludeInactive {
		packages = FilterBookable(packages)
	}

	asOf := opts.AsOf
	if asOf.IsZero() {
		asOf = now
	}

	settings := s.RankingSettings(ctx)
	return Rank(packages, settings, asOf), nil
}

// RankingSettings resolves the ranking configuration from the settings
// store at call time. Missing keys and read failures fall back to the
// defaults (newest first, verified priority on); a broken settings store
// must never take the listing down.
func (s *Service) RankingSettings(ctx context.Context) domain.RankingSettings {
	settings := domain.RankingSettings{
		Algorithm:        domain.SortNewest,
		VerifiedPriority: true,
	}

	rawAlgorithm, err := s.settingsRepo.Get(ctx, domain.SettingSortAlgorithm)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("could not read sort algorithm setting, using default")
	} else if rawAlgorithm != "" {
		settings.Algorithm = domain.ParseSortAlgorithm(rawAlgorithm)
	}

	rawVerified, err := s.settingsRepo.Get(ctx, domain.SettingVerifiedPriority)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("could not read verified priority setting, using default")
	} else if rawVerified != "" {
		settings.VerifiedPriority = rawVerified == "true"
	}

	return settings
}
