package discovery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/safarind/umrah-marketplace-api/infrastructure/repository/mocks"
	"github.com/safarind/umrah-marketplace-api/internal/domain"
	"github.com/safarind/umrah-marketplace-api/pkg/background"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, now time.Time) (*Service, *mocks.MockPackageRepository, *mocks.MockSettingsRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	packageRepo := mocks.NewMockPackageRepository(ctrl)
	settingsRepo := mocks.NewMockSettingsRepository(ctrl)

	service := NewService(packageRepo, settingsRepo, background.NewRunner(0))
	service.now = func() time.Time { return now }

	return service, packageRepo, settingsRepo
}

func expectSettings(settingsRepo *mocks.MockSettingsRepository, algorithm, verified string) {
	settingsRepo.EXPECT().Get(gomock.Any(), domain.SettingSortAlgorithm).Return(algorithm, nil)
	settingsRepo.EXPECT().Get(gomock.Any(), domain.SettingVerifiedPriority).Return(verified, nil)
}

func TestListPackagesRanksWithResolvedSettings(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	service, packageRepo, settingsRepo := newTestService(t, now)

	future := now.AddDate(0, 1, 0)
	packages := []*domain.Package{
		pkg("A", func(p *domain.Package) {
			p.Views = 1000
			p.DepartureDate = future
		}),
		pkg("B", func(p *domain.Package) {
			p.IsPinned = true
			p.DepartureDate = future
		}),
		pkg("C", func(p *domain.Package) {
			p.Travel.IsVerified = true
			p.Views = 5
			p.DepartureDate = future
		}),
	}

	packageRepo.EXPECT().ListPackages(gomock.Any(), false).Return(packages, nil)
	expectSettings(settingsRepo, "popular", "true")

	ranked, err := service.ListPackages(context.Background(), ListOptions{})

	assert.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, ids(ranked))
}

func TestListPackagesExcludesDepartedFromCurrentResponse(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	service, packageRepo, settingsRepo := newTestService(t, now)

	packages := []*domain.Package{
		pkg("FRESH", func(p *domain.Package) { p.DepartureDate = now.AddDate(0, 0, 7) }),
		pkg("DEPARTED", func(p *domain.Package) { p.DepartureDate = now.AddDate(0, 0, -1) }),
	}

	packageRepo.EXPECT().ListPackages(gomock.Any(), false).Return(packages, nil)
	// Write-back failure must not affect the current response.
	packageRepo.EXPECT().Deactivate(gomock.Any(), "DEPARTED").Return(errors.New("db down"))
	expectSettings(settingsRepo, "newest", "true")

	ranked, err := service.ListPackages(context.Background(), ListOptions{})
	service.runner.Wait()

	assert.NoError(t, err)
	assert.Equal(t, []string{"FRESH"}, ids(ranked))
}

func TestListPackagesAdminViewKeepsInactive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	service, packageRepo, settingsRepo := newTestService(t, now)

	packages := []*domain.Package{
		pkg("ACTIVE", func(p *domain.Package) { p.DepartureDate = now.AddDate(0, 0, 7) }),
		pkg("INACTIVE", func(p *domain.Package) {
			p.IsActive = false
			p.DepartureDate = now.AddDate(0, 0, 7)
		}),
	}

	packageRepo.EXPECT().ListPackages(gomock.Any(), true).Return(packages, nil)
	expectSettings(settingsRepo, "newest", "true")

	ranked, err := service.ListPackages(context.Background(), ListOptions{IncludeInactive: true})

	assert.NoError(t, err)
	assert.Len(t, ranked, 2)
}

func TestListPackagesPropagatesRepositoryError(t *testing.T) {
	service, packageRepo, _ := newTestService(t, time.Now())

	packageRepo.EXPECT().ListPackages(gomock.Any(), false).Return(nil, errors.New("connection refused"))

	_, err := service.ListPackages(context.Background(), ListOptions{})
	assert.Error(t, err)
}

func TestRankingSettingsDefaults(t *testing.T) {
	tests := []struct {
		name         string
		rawAlgorithm string
		algorithmErr error
		rawVerified  string
		verifiedErr  error
		want         domain.RankingSettings
	}{
		{
			name:         "values present",
			rawAlgorithm: "random",
			rawVerified:  "false",
			want:         domain.RankingSettings{Algorithm: domain.SortRandom, VerifiedPriority: false},
		},
		{
			name: "missing keys fall back to defaults",
			want: domain.RankingSettings{Algorithm: domain.SortNewest, VerifiedPriority: true},
		},
		{
			name:         "unknown algorithm falls back to newest",
			rawAlgorithm: "trending",
			rawVerified:  "true",
			want:         domain.RankingSettings{Algorithm: domain.SortNewest, VerifiedPriority: true},
		},
		{
			name:         "read failures keep defaults",
			algorithmErr: errors.New("db down"),
			verifiedErr:  errors.New("db down"),
			want:         domain.RankingSettings{Algorithm: domain.SortNewest, VerifiedPriority: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, settingsRepo := newTestService(t, time.Now())

			settingsRepo.EXPECT().Get(gomock.Any(), domain.SettingSortAlgorithm).Return(tt.rawAlgorithm, tt.algorithmErr)
			settingsRepo.EXPECT().Get(gomock.Any(), domain.SettingVerifiedPriority).Return(tt.rawVerified, tt.verifiedErr)

			got := service.RankingSettings(context.Background())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconcileMarksDepartedInactive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	service, packageRepo, _ := newTestService(t, now)

	departed := pkg("OLD", func(p *domain.Package) { p.DepartureDate = now.AddDate(0, 0, -1) })
	fresh := pkg("NEW", func(p *domain.Package) { p.DepartureDate = now.AddDate(0, 0, 1) })
	alreadyInactive := pkg("GONE", func(p *domain.Package) {
		p.IsActive = false
		p.DepartureDate = now.AddDate(0, 0, -30)
	})

	// Only the departed-but-still-active package gets a write-back.
	packageRepo.EXPECT().Deactivate(gomock.Any(), "OLD").Return(errors.New("write-back failed"))

	reconciled := service.Reconcile(context.Background(), []*domain.Package{departed, fresh, alreadyInactive}, now)
	service.runner.Wait()

	assert.False(t, reconciled[0].IsActive, "departed package must be inactive in the current response")
	assert.True(t, reconciled[1].IsActive)
	assert.False(t, reconciled[2].IsActive)

	// The fetched record itself is not mutated.
	assert.True(t, departed.IsActive)
}

func TestReconcileDepartingTodayIsNotExpired(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	service, _, _ := newTestService(t, now)

	today := pkg("TODAY", func(p *domain.Package) {
		p.DepartureDate = time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	})

	reconciled := service.Reconcile(context.Background(), []*domain.Package{today}, now)
	service.runner.Wait()

	assert.True(t, reconciled[0].IsActive, "date-only comparison: same-day departure is not departed")
}
