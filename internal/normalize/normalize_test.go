package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePlayerCount(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"1.2M", 1_200_000, true},
		{"500K", 500_000, true},
		{"500k", 500_000, true},
		{"300", 300, true},
		{"10,000+", 10_000, true},
		{"2B", 2_000_000_000, true},
		{" 45 K ", 45_000, true},
		{"", 0, false},
		{"lots", 0, false},
		{"M", 0, false},
		{"-5K", 0, false},
		{"1e18", 1_000_000_000_000_000_000, true},
		{"1e20", 0, false},
		{"9999999999999M", 0, false},
		{"9300000000B", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePlayerCount(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	got, ok := ParseTimestamp("2024-03-01")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	got, ok = ParseTimestamp("2024-03-01T10:30:00Z")
	assert.True(t, ok)
	assert.Equal(t, 10, got.Hour())

	got, ok = ParseTimestamp("")
	assert.False(t, ok)
	assert.True(t, got.Equal(Epoch))

	got, ok = ParseTimestamp("yesterday")
	assert.False(t, ok)
	assert.True(t, got.Equal(Epoch))
}

func TestIsFreeToPlay(t *testing.T) {
	assert.True(t, IsFreeToPlay("Free to Play"))
	assert.False(t, IsFreeToPlay("0"))
	assert.False(t, IsFreeToPlay("free to play"))
	assert.False(t, IsFreeToPlay("$19.99"))
}
