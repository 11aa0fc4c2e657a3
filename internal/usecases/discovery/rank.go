package discovery

import (
	"sort"
	"time"

	"github.com/safarind/umrah-marketplace-api/internal/domain"
)

// Rank orders packages by strict lexicographic tiers: pinned first, then
// verified travels first (when enabled in settings), then the configured
// algorithm, then package id ascending so the order is always total.
// The input slice is not mutated; Rank is a pure function of its inputs
// and the asOf date.
func Rank(packages []*domain.Package, settings domain.RankingSettings, asOf time.Time) []*domain.Package {
	ranked := make([]*domain.Package, len(packages))
	copy(ranked, packages)

	sort.Slice(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j], settings, asOf)
	})

	return ranked
}

// FilterBookable drops packages that must not appear on public surfaces:
// inactive packages and packages under an inactive travel.
func FilterBookable(packages []*domain.Package) []*domain.Package {
	visible := make([]*domain.Package, 0, len(packages))
	for _, p := range packages {
		if p.Bookable() {
			visible = append(visible, p)
		}
	}
	return visible
}

func less(a, b *domain.Package, settings domain.RankingSettings, asOf time.Time) bool {
	if a.IsPinned != b.IsPinned {
		return a.IsPinned
	}

	if settings.VerifiedPriority && a.Travel.IsVerified != b.Travel.IsVerified {
		return a.Travel.IsVerified
	}

	switch settings.Algorithm {
	case domain.SortPopular:
		scoreA, scoreB := PopularityScore(a), PopularityScore(b)
		if scoreA != scoreB {
			return scoreA > scoreB
		}
	case domain.SortRandom:
		keyA, keyB := ShuffleKey(a.ID, asOf), ShuffleKey(b.ID, asOf)
		if keyA != keyB {
			return keyA < keyB
		}
	default: // SortNewest
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
	}

	return a.ID < b.ID
}
