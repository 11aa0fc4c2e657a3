package domain

import "time"

// BookingIntent is a captured request to be contacted about a package.
// It precedes any real transaction; repeat bookings create new intents.
type BookingIntent struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Phone                 string `json:"phone"` // always normalized before persistence
	Pax                   int    `json:"pax"`
	PackageID             string `json:"package_id"`
	SelectedPriceOptionID string `json:"selected_price_option_id,omitempty"`
	IsGuest               bool   `json:"is_guest"`
	UserID                string `json:"user_id,omitempty"`
}

// PrefillEntry is the device-keyed cache record used to pre-fill the next
// booking form on the same device. Persists until explicitly cleared.
type PrefillEntry struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Pax   int    `json:"pax"`
}

// GuestBookingLog is the analytics-grade record written for guest bookings.
type GuestBookingLog struct {
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	DefaultPax int       `json:"default_pax"`
	CreatedAt  time.Time `json:"created_at"`
}

// BookingLogEntry is the admin-facing booking log record. It denormalizes
// package and travel fields so the log survives later package edits.
type BookingLogEntry struct {
	Name                string    `json:"name"`
	Phone               string    `json:"phone"`
	Pax                 int       `json:"pax"`
	PackageID           string    `json:"package_id"`
	PackageName         string    `json:"package_name"`
	SelectedPackageName string    `json:"selected_package_name"`
	PackagePrice        float64   `json:"package_price"`
	TravelName          string    `json:"travel_name"`
	TravelUsername      string    `json:"travel_username"`
	IsGuest             bool      `json:"is_guest"`
	UserID              string    `json:"user_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
