// Package booking captures booking intents and hands them off to WhatsApp.
//
// Capture is a two-phase write: the device-keyed prefill cache is written
// synchronously and is authoritative for form pre-fill; the durable booking
// logs and the click counter are analytics-grade and written best-effort in
// the background. The two are deliberately not a single transaction, the
// user-facing latency is bounded by the synchronous phase alone.
package booking

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/safarind/umrah-marketplace-api/infrastructure/cache"
	"github.com/safarind/umrah-marketplace-api/infrastructure/repository"
	"github.com/safarind/umrah-marketplace-api/internal/domain"
	"github.com/safarind/umrah-marketplace-api/internal/usecases/whatsapp"
	"github.com/safarind/umrah-marketplace-api/pkg/background"
	"github.com/safarind/umrah-marketplace-api/pkg/log"
	"github.com/safarind/umrah-marketplace-api/pkg/phone"
	"github.com/safarind/umrah-marketplace-api/pkg/utils"
)

type BookingService interface {
	Capture(ctx context.Context, deviceID string, intent domain.BookingIntent) (*Result, error)
	Prefill(deviceID string) (*domain.PrefillEntry, bool)
}

// Result is returned once the synchronous phase of Capture completes.
type Result struct {
	BookingID      string `json:"booking_id"`
	WhatsAppURL    string `json:"whatsapp_url"`
	RecipientPhone string `json:"recipient_phone,omitempty"`
}

type Service struct {
	packageRepo    repository.PackageRepository
	bookingLogRepo repository.BookingLogRepository
	settingsRepo   repository.SettingsRepository
	prefillCache   *cache.PrefillCache
	composer       *whatsapp.Composer
	runner         *background.Runner
}

func NewService(
	packageRepo repository.PackageRepository,
	bookingLogRepo repository.BookingLogRepository,
	settingsRepo repository.SettingsRepository,
	prefillCache *cache.PrefillCache,
	composer *whatsapp.Composer,
	runner *background.Runner,
) *Service {
	return &Service{
		packageRepo:    packageRepo,
		bookingLogRepo: bookingLogRepo,
		settingsRepo:   settingsRepo,
		prefillCache:   prefillCache,
		composer:       composer,
		runner:         runner,
	}
}

// Capture validates the intent, writes the prefill cache synchronously,
// submits the durable writes best-effort and composes the WhatsApp link.
// Validation failures happen before any write; background write failures
// never surface to the caller.
func (s *Service) Capture(ctx context.Context, deviceID string, intent domain.BookingIntent) (*Result, error) {
	if err := s.validate(&intent); err != nil {
		return nil, err
	}

	pkg, err := s.packageRepo.GetPackage(ctx, intent.PackageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil || !pkg.Bookable() {
		return nil, ErrPackageNotFound
	}

	intent.ID, err = utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "error generating booking id")
	}

	// Phase 1: synchronous, authoritative for the next form pre-fill.
	s.prefillCache.Put(deviceID, domain.PrefillEntry{
		Name:  intent.Name,
		Phone: intent.Phone,
		Pax:   intent.Pax,
	})

	option := selectPriceOption(pkg, intent.SelectedPriceOptionID)

	// Phase 2: best-effort, analytics-grade. Never blocks, never rolls
	// back phase 1.
	s.submitDurableWrites(ctx, pkg, option, intent)

	link := s.composer.Compose(pkg, option, intent, s.routingSettings(ctx))

	return &Result{
		BookingID:      intent.ID,
		WhatsAppURL:    link.URL,
		RecipientPhone: link.RecipientPhone,
	}, nil
}

// Prefill returns the cached contact details for a device, if any.
func (s *Service) Prefill(deviceID string) (*domain.PrefillEntry, bool) {
	entry, ok := s.prefillCache.Get(deviceID)
	if !ok {
		return nil, false
	}
	return &entry, true
}

// validate checks the intent and normalizes its phone in place. Raw user
// input is never forwarded past this point.
func (s *Service) validate(intent *domain.BookingIntent) error {
	if strings.TrimSpace(intent.Name) == "" {
		return ErrEmptyName
	}

	normalized, err := phone.Normalize(intent.Phone)
	if err != nil {
		return errors.Wrap(ErrInvalidPhone, err.Error())
	}
	intent.Phone = normalized

	if intent.Pax < 1 {
		return ErrInvalidPax
	}

	return nil
}

func (s *Service) submitDurableWrites(ctx context.Context, pkg *domain.Package, option *domain.PriceOption, intent domain.BookingIntent) {
	correlationID := log.GetCorrelationID(ctx)

	if intent.IsGuest {
		s.runner.Submit("guest-booking-log", func(taskCtx context.Context) error {
			return logged(correlationID, s.bookingLogRepo.SaveGuestBooking(taskCtx, domain.GuestBookingLog{
				Name:       intent.Name,
				Phone:      intent.Phone,
				DefaultPax: intent.Pax,
			}))
		})
	}

	entry := domain.BookingLogEntry{
		Name:           intent.Name,
		Phone:          intent.Phone,
		Pax:            intent.Pax,
		PackageID:      pkg.ID,
		PackageName:    pkg.Name,
		TravelName:     pkg.Travel.Name,
		TravelUsername: pkg.Travel.Username,
		IsGuest:        intent.IsGuest,
		UserID:         intent.UserID,
	}
	if option != nil {
		entry.SelectedPackageName = option.Name
		entry.PackagePrice = option.Price
	}

	s.runner.Submit("admin-booking-log", func(taskCtx context.Context) error {
		return logged(correlationID, s.bookingLogRepo.SaveBookingLog(taskCtx, entry))
	})

	s.runner.Submit("booking-click-counter", func(taskCtx context.Context) error {
		return logged(correlationID, s.packageRepo.IncrementBookingClicks(taskCtx, pkg.ID))
	})
}

// logged records a best-effort write failure and swallows it, so the
// runner never sees these tasks as failed twice.
func logged(correlationID string, err error) error {
	if err != nil {
		log.L.WithError(err).WithField("correlation_id", correlationID).Warn("best-effort booking write failed")
	}
	return nil
}

// routingSettings resolves the WhatsApp routing configuration at call
// time, defaulting to travel routing when the store is unreadable.
func (s *Service) routingSettings(ctx context.Context) domain.RoutingSettings {
	routing := domain.RoutingSettings{Mode: domain.RouteToTravel}

	rawMode, err := s.settingsRepo.Get(ctx, domain.SettingWhatsappRouting)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("could not read whatsapp routing setting, using default")
	} else if rawMode == string(domain.RouteToAdmin) {
		routing.Mode = domain.RouteToAdmin
	}

	adminPhone, err := s.settingsRepo.Get(ctx, domain.SettingAdminWhatsapp)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("could not read admin whatsapp setting")
	} else {
		routing.AdminPhone = adminPhone
	}

	return routing
}

func selectPriceOption(pkg *domain.Package, optionID string) *domain.PriceOption {
	if optionID == "" {
		return nil
	}
	for i := range pkg.PriceOptions {
		if pkg.PriceOptions[i].ID == optionID {
			return &pkg.PriceOptions[i]
		}
	}
	return nil
}
