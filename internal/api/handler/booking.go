package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/safarind/umrah-marketplace-api/internal/domain"
	"github.com/safarind/umrah-marketplace-api/internal/usecases/booking"
	"github.com/safarind/umrah-marketplace-api/pkg/apiErrors"
	"github.com/safarind/umrah-marketplace-api/pkg/log"
)

type CreateBookingRequest struct {
	DeviceID      string `json:"device_id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Pax           int    `json:"pax"`
	PackageID     string `json:"package_id"`
	PriceOptionID string `json:"price_option_id,omitempty"`
	UserID        string `json:"user_id,omitempty"`
}

// CreateBooking captures a booking intent and returns the WhatsApp
// handoff link. Validation errors are returned before any write.
func CreateBooking(service booking.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if req.DeviceID == "" {
			req.DeviceID = r.Header.Get("X-Device-ID")
		}
		if req.DeviceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "device_id is required", nil)
			return
		}

		intent := domain.BookingIntent{
			Name:                  req.Name,
			Phone:                 req.Phone,
			Pax:                   req.Pax,
			PackageID:             req.PackageID,
			SelectedPriceOptionID: req.PriceOptionID,
			IsGuest:               req.UserID == "",
			UserID:                req.UserID,
		}

		result, err := service.Capture(r.Context(), req.DeviceID, intent)
		if err != nil {
			handleBookingError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error writing booking response")
		}
	}
}

// GetPrefill returns the cached contact details for a device so the
// booking form can be pre-filled without another round-trip.
func GetPrefill(service booking.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := r.URL.Query().Get("device_id")
		if deviceID == "" {
			deviceID = r.Header.Get("X-Device-ID")
		}
		if deviceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "device_id is required", nil)
			return
		}

		entry, ok := service.Prefill(deviceID)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrPrefillNotFound, "no prefill entry for device", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error writing prefill response")
		}
	}
}

func handleBookingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, booking.ErrEmptyName):
		apiErrors.WriteError(w, apiErrors.ErrEmptyName, "name must not be empty", nil)
	case errors.Is(err, booking.ErrInvalidPhone):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPhone, "phone number is not valid", nil)
	case errors.Is(err, booking.ErrInvalidPax):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPax, "pax must be at least 1", nil)
	case errors.Is(err, booking.ErrPackageNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPackageNotFound, "package not found or not bookable", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("error capturing booking intent")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error capturing booking", nil)
	}
}
