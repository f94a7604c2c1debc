package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStakes(t *testing.T) {
	cfg := Config{StakeLadder: []float64{2.0, 4.3, 9.24}}
	stakes := cfg.Stakes()

	if assert.Len(t, stakes, 3) {
		assert.True(t, stakes[1].Equal(decimal.RequireFromString("4.3")))
	}
}

func TestAnalyticsOptions_ZeroValuesKeepDefaults(t *testing.T) {
	opts := Config{}.AnalyticsOptions()
	assert.Equal(t, 10, opts.MinHourSampleFloor)
	assert.Equal(t, 0.005, opts.MinHourSamplePct)
	assert.Equal(t, 5, opts.MinPairOps)
}

func TestAnalyticsOptions_Overrides(t *testing.T) {
	cfg := Config{MinHourSampleFloor: 20, MinPairOps: 8}
	opts := cfg.AnalyticsOptions()
	assert.Equal(t, 20, opts.MinHourSampleFloor)
	assert.Equal(t, 8, opts.MinPairOps)
	assert.Equal(t, 7, opts.TopHours)
}
