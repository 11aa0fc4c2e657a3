package discovery

import "github.com/safarind/umrah-marketplace-api/internal/domain"

// Engagement weights of the popularity score. Booking clicks signal the
// strongest intent, favorites are a deliberate action, views are passive.
const (
	weightViews         = 1
	weightFavorites     = 2
	weightBookingClicks = 3
)

// PopularityScore converts the engagement counters of a package into a
// single comparable value: views + 2*favorites + 3*bookingClicks.
// No clamping and no decay over time. Ties are broken by the ranking
// engine, not here.
func PopularityScore(p *domain.Package) int {
	return weightViews*p.Views +
		weightFavorites*p.FavoriteCount +
		weightBookingClicks*p.BookingClicks
}
