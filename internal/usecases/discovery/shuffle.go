package discovery

import (
	"hash/fnv"
	"time"
)

// ShuffleKey derives the deterministic daily-rotation sort key for a
// package. The seed depends only on the calendar day of asOf, so every
// caller sorting on this key within the same day sees the same order, on
// any server instance, while the next day reshuffles the listing. Two
// different packages almost never collide; the ranking engine falls back
// to the package id when they do.
func ShuffleKey(packageID string, asOf time.Time) uint64 {
	h := fnv.New64a()
	h.Write([]byte(packageID))

	// Multiplying the day number by a large odd constant spreads
	// consecutive days across the 64-bit space before mixing.
	seed := uint64(dayNumber(asOf)) * 0x9e3779b97f4a7c15

	return mix64(h.Sum64() ^ seed)
}

// dayNumber counts calendar days since the Unix epoch, ignoring
// time-of-day and normalizing to UTC so the seed is instance-independent.
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// mix64 is the splitmix64 finalizer, a well-distributed 64-bit mixer.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
