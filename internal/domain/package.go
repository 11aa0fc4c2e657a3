// Package domain contains the data structures of the application domain
package domain

import "time"

// Travel is the agency that owns a package. Ranking and booking only need
// the subset of fields below; the full agency profile lives elsewhere.
type Travel struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Phone      string `json:"phone"`
	IsVerified bool   `json:"is_verified"`
	IsActive   bool   `json:"is_active"`
}

// Package is the read model consumed by the discovery pipeline.
type Package struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	IsPinned      bool      `json:"is_pinned"`
	IsActive      bool      `json:"is_active"`
	DurationDays  int       `json:"duration_days"`
	DepartureCity string    `json:"departure_city"`
	DepartureDate time.Time `json:"departure_date"`
	CreatedAt     time.Time `json:"created_at"`

	Views         int `json:"views"`
	FavoriteCount int `json:"favorite_count"`
	BookingClicks int `json:"booking_clicks"`

	Travel       Travel        `json:"travel"`
	PriceOptions []PriceOption `json:"price_options,omitempty"`
}

// PriceOption is one of the selectable price tiers of a package
// (e.g. quad/triple/double room).
type PriceOption struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Cashback float64 `json:"cashback,omitempty"`
}

// Departed reports whether the package departure date is strictly before
// the calendar day of now. Time-of-day is ignored on both sides.
func (p Package) Departed(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	dy, dm, dd := p.DepartureDate.Date()
	departure := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)

	return departure.Before(today)
}

// Bookable reports whether the package can be offered on public surfaces.
// A package under an inactive travel is never bookable, even when the
// package itself is still flagged active.
func (p Package) Bookable() bool {
	return p.IsActive && p.Travel.IsActive
}
