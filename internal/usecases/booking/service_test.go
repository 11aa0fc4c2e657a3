package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/safarind/umrah-marketplace-api/infrastructure/cache"
	"github.com/safarind/umrah-marketplace-api/infrastructure/repository/mocks"
	"github.com/safarind/umrah-marketplace-api/internal/domain"
	"github.com/safarind/umrah-marketplace-api/internal/usecases/whatsapp"
	"github.com/safarind/umrah-marketplace-api/pkg/background"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	service        *Service
	packageRepo    *mocks.MockPackageRepository
	bookingLogRepo *mocks.MockBookingLogRepository
	settingsRepo   *mocks.MockSettingsRepository
	prefillCache   *cache.PrefillCache
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := &testEnv{
		packageRepo:    mocks.NewMockPackageRepository(ctrl),
		bookingLogRepo: mocks.NewMockBookingLogRepository(ctrl),
		settingsRepo:   mocks.NewMockSettingsRepository(ctrl),
		prefillCache:   cache.NewPrefillCache(),
	}

	env.service = NewService(
		env.packageRepo,
		env.bookingLogRepo,
		env.settingsRepo,
		env.prefillCache,
		whatsapp.NewComposer("", "https://safarind.id"),
		background.NewRunner(0),
	)

	return env
}

func bookablePackage() *domain.Package {
	return &domain.Package{
		ID:            "PKG1",
		Name:          "Umrah Syawal 9 Hari",
		Slug:          "umrah-syawal-9-hari",
		IsActive:      true,
		DurationDays:  9,
		DepartureCity: "Surabaya",
		DepartureDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Travel: domain.Travel{
			ID:       "TRV1",
			Name:     "Amanah Travel",
			Username: "amanah",
			Phone:    "081234567890",
			IsActive: true,
		},
		PriceOptions: []domain.PriceOption{
			{ID: "OPT1", Name: "Quad Room", Price: 25000000},
			{ID: "OPT2", Name: "Double Room", Price: 32000000, Cashback: 750000},
		},
	}
}

func guestIntent() domain.BookingIntent {
	return domain.BookingIntent{
		Name:                  "Ahmad Fauzi",
		Phone:                 "08123456789",
		Pax:                   2,
		PackageID:             "PKG1",
		SelectedPriceOptionID: "OPT2",
		IsGuest:               true,
	}
}

func (e *testEnv) expectRoutingSettings(mode, adminPhone string) {
	e.settingsRepo.EXPECT().Get(gomock.Any(), domain.SettingWhatsappRouting).Return(mode, nil)
	e.settingsRepo.EXPECT().Get(gomock.Any(), domain.SettingAdminWhatsapp).Return(adminPhone, nil)
}

func TestCaptureValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.BookingIntent)
		wantErr error
	}{
		{
			name:    "empty name",
			mutate:  func(i *domain.BookingIntent) { i.Name = "  " },
			wantErr: ErrEmptyName,
		},
		{
			name:    "invalid phone",
			mutate:  func(i *domain.BookingIntent) { i.Phone = "123" },
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "zero pax",
			mutate:  func(i *domain.BookingIntent) { i.Pax = 0 },
			wantErr: ErrInvalidPax,
		},
		{
			name:    "negative pax",
			mutate:  func(i *domain.BookingIntent) { i.Pax = -3 },
			wantErr: ErrInvalidPax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository expectations: validation failures must not
			// trigger any read or write.
			env := newTestEnv(t)

			intent := guestIntent()
			tt.mutate(&intent)

			_, err := env.service.Capture(context.Background(), "device-1", intent)
			assert.ErrorIs(t, err, tt.wantErr)

			_, cached := env.prefillCache.Get("device-1")
			assert.False(t, cached, "no prefill write on validation failure")
		})
	}
}

func TestCaptureHappyPathGuest(t *testing.T) {
	env := newTestEnv(t)

	env.packageRepo.EXPECT().GetPackage(gomock.Any(), "PKG1").Return(bookablePackage(), nil)
	env.expectRoutingSettings("", "")

	env.bookingLogRepo.EXPECT().
		SaveGuestBooking(gomock.Any(), domain.GuestBookingLog{
			Name:       "Ahmad Fauzi",
			Phone:      "628123456789",
			DefaultPax: 2,
		}).
		Return(nil)

	env.bookingLogRepo.EXPECT().
		SaveBookingLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry domain.BookingLogEntry) error {
			assert.Equal(t, "628123456789", entry.Phone, "raw phone must never reach durable storage")
			assert.Equal(t, "Umrah Syawal 9 Hari", entry.PackageName)
			assert.Equal(t, "Double Room", entry.SelectedPackageName)
			assert.Equal(t, 32000000.0, entry.PackagePrice)
			assert.Equal(t, "Amanah Travel", entry.TravelName)
			assert.Equal(t, "amanah", entry.TravelUsername)
			assert.True(t, entry.IsGuest)
			return nil
		})

	env.packageRepo.EXPECT().IncrementBookingClicks(gomock.Any(), "PKG1").Return(nil)

	result, err := env.service.Capture(context.Background(), "device-1", guestIntent())
	env.service.runner.Wait()

	require.NoError(t, err)
	assert.NotEmpty(t, result.BookingID)
	assert.Equal(t, "6281234567890", result.RecipientPhone)
	assert.Contains(t, result.WhatsAppURL, "phone=6281234567890")

	entry, cached := env.prefillCache.Get("device-1")
	require.True(t, cached)
	assert.Equal(t, domain.PrefillEntry{Name: "Ahmad Fauzi", Phone: "628123456789", Pax: 2}, entry)
}

func TestCaptureAuthenticatedUserSkipsGuestLog(t *testing.T) {
	env := newTestEnv(t)

	intent := guestIntent()
	intent.IsGuest = false
	intent.UserID = "USR9"

	env.packageRepo.EXPECT().GetPackage(gomock.Any(), "PKG1").Return(bookablePackage(), nil)
	env.expectRoutingSettings("", "")

	// No SaveGuestBooking expectation: authenticated intents only hit the
	// admin booking log.
	env.bookingLogRepo.EXPECT().
		SaveBookingLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry domain.BookingLogEntry) error {
			assert.False(t, entry.IsGuest)
			assert.Equal(t, "USR9", entry.UserID)
			return nil
		})
	env.packageRepo.EXPECT().IncrementBookingClicks(gomock.Any(), "PKG1").Return(nil)

	_, err := env.service.Capture(context.Background(), "device-1", intent)
	env.service.runner.Wait()

	assert.NoError(t, err)
}

func TestCaptureSucceedsWhenDurableWritesFail(t *testing.T) {
	env := newTestEnv(t)

	env.packageRepo.EXPECT().GetPackage(gomock.Any(), "PKG1").Return(bookablePackage(), nil)
	env.expectRoutingSettings("", "")

	env.bookingLogRepo.EXPECT().SaveGuestBooking(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	env.bookingLogRepo.EXPECT().SaveBookingLog(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	env.packageRepo.EXPECT().IncrementBookingClicks(gomock.Any(), "PKG1").Return(errors.New("db down"))

	result, err := env.service.Capture(context.Background(), "device-1", guestIntent())
	env.service.runner.Wait()

	require.NoError(t, err, "durable write failures must never surface")
	assert.NotEmpty(t, result.WhatsAppURL)

	_, cached := env.prefillCache.Get("device-1")
	assert.True(t, cached, "prefill cache write is independent of durable writes")
}

func TestCaptureAdminRouting(t *testing.T) {
	env := newTestEnv(t)

	env.packageRepo.EXPECT().GetPackage(gomock.Any(), "PKG1").Return(bookablePackage(), nil)
	env.expectRoutingSettings("admin", "6281111111111")

	env.bookingLogRepo.EXPECT().SaveGuestBooking(gomock.Any(), gomock.Any()).Return(nil)
	env.bookingLogRepo.EXPECT().SaveBookingLog(gomock.Any(), gomock.Any()).Return(nil)
	env.packageRepo.EXPECT().IncrementBookingClicks(gomock.Any(), "PKG1").Return(nil)

	result, err := env.service.Capture(context.Background(), "device-1", guestIntent())
	env.service.runner.Wait()

	require.NoError(t, err)
	assert.Equal(t, "6281111111111", result.RecipientPhone)
	assert.Contains(t, result.WhatsAppURL, "phone=6281111111111")
}

func TestCapturePackageNotBookable(t *testing.T) {
	tests := []struct {
		name string
		pkg  *domain.Package
	}{
		{
			name: "package missing",
			pkg:  nil,
		},
		{
			name: "package inactive",
			pkg: func() *domain.Package {
				p := bookablePackage()
				p.IsActive = false
				return p
			}(),
		},
		{
			name: "travel inactive",
			pkg: func() *domain.Package {
				p := bookablePackage()
				p.Travel.IsActive = false
				return p
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.packageRepo.EXPECT().GetPackage(gomock.Any(), "PKG1").Return(tt.pkg, nil)

			_, err := env.service.Capture(context.Background(), "device-1", guestIntent())
			assert.ErrorIs(t, err, ErrPackageNotFound)
		})
	}
}

func TestPrefill(t *testing.T) {
	env := newTestEnv(t)

	_, ok := env.service.Prefill("device-1")
	assert.False(t, ok)

	env.prefillCache.Put("device-1", domain.PrefillEntry{Name: "Siti", Phone: "628139990000", Pax: 1})

	entry, ok := env.service.Prefill("device-1")
	require.True(t, ok)
	assert.Equal(t, "Siti", entry.Name)
}
