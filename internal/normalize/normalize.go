// Package normalize interprets the free-text fields the fixtures use in place
// of typed values: player counts like "1.2M", date strings and the
// "Free to Play" price sentinel.
package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// PriceFree is the sentinel price string marking a free game. Only an exact
// match counts; "0", "$0" and "free" are ordinary prices.
const PriceFree = "Free to Play"

// Epoch is the timestamp used for missing or unparseable dates.
var Epoch = time.Unix(0, 0).UTC()

var suffixMultipliers = map[byte]float64{
	'K': 1_000,
	'M': 1_000_000,
	'B': 1_000_000_000,
}

// IsFreeToPlay reports whether price is the free sentinel.
func IsFreeToPlay(price string) bool {
	return price == PriceFree
}

// ParsePlayerCount converts strings such as "1.2M", "500K", "300" or
// "10,000+" into a number. ok is false when s cannot be read or does not fit
// in an int64, in which case the count is 0.
func ParsePlayerCount(s string) (count int64, ok bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "+")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}

	multiplier := 1.0
	last := s[len(s)-1]
	if last >= 'a' && last <= 'z' {
		last -= 'a' - 'A'
	}
	if m, found := suffixMultipliers[last]; found {
		multiplier = m
		s = strings.TrimSpace(s[:len(s)-1])
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	v := math.Round(n * multiplier)
	if v >= float64(math.MaxInt64) {
		return 0, false
	}
	return int64(v), true
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp reads a date string in any of the layouts the fixtures use.
// Missing or unreadable values yield Epoch with ok false.
func ParseTimestamp(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Epoch, false
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return Epoch, false
}
