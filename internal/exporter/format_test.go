package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSigned(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"positive", 5, "+5"},
		{"zero", 0, "+0"},
		{"negative", -3, "-3"},
		{"rounds half to even", 2.5, "+2"},
		{"rounds fraction", 24.7, "+25"},
		{"negative fraction", -9.09, "-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSigned(tt.in))
		})
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "50", formatCount(50))
	assert.Equal(t, "50", formatCount(50.4))
	assert.Equal(t, "0", formatCount(0))
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		diff     float64
		previous float64
		want     float64
	}{
		{"normal increase", 2, 8, 25},
		{"normal decrease", -1, 11, -100.0 / 11},
		{"zero previous positive diff", 4, 0, 100},
		{"zero previous zero diff", 0, 0, 0},
		{"zero previous negative diff", -2, 0, 0},
		{"negative previous", 2, -4, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, percentChange(tt.diff, tt.previous), 1e-9)
		})
	}
}
