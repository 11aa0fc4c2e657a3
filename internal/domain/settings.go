package domain

// SortAlgorithm selects the third ranking tier on public listing surfaces.
type SortAlgorithm string

const (
	SortPopular SortAlgorithm = "popular"
	SortRandom  SortAlgorithm = "random"
	SortNewest  SortAlgorithm = "newest"
)

// ParseSortAlgorithm maps a raw settings value to a SortAlgorithm,
// falling back to SortNewest for unknown values.
func ParseSortAlgorithm(raw string) SortAlgorithm {
	switch SortAlgorithm(raw) {
	case SortPopular, SortRandom, SortNewest:
		return SortAlgorithm(raw)
	default:
		return SortNewest
	}
}

// RankingSettings is the resolved ranking configuration injected into the
// ranking engine at call time.
type RankingSettings struct {
	Algorithm        SortAlgorithm
	VerifiedPriority bool
}

// RoutingMode selects the destination of the outbound WhatsApp link.
type RoutingMode string

const (
	RouteToTravel RoutingMode = "travel"
	RouteToAdmin  RoutingMode = "admin"
)

// RoutingSettings is the resolved WhatsApp routing configuration.
type RoutingSettings struct {
	Mode       RoutingMode
	AdminPhone string
}

// Settings keys as stored in the key-value settings store.
const (
	SettingSortAlgorithm    = "packageSortAlgorithm"
	SettingVerifiedPriority = "verifiedPriority"
	SettingWhatsappRouting  = "whatsappRouting"
	SettingAdminWhatsapp    = "adminWhatsapp"
)
