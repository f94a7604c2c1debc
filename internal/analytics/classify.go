package analytics

import (
	"github.com/Augusto-Mathias/analise-sinais-trading/internal/model"
)

// PairCut is one classification band for instruments: minimum win rate
// and maximum volatility (loss rate).
type PairCut struct {
	MinWinRate    float64
	MaxVolatility float64
	Tier          model.Tier
}

// HourCut is one classification band for hours. Hour volatility measures
// consistency, so the band sets a floor, not a ceiling.
type HourCut struct {
	MinWinRate    float64
	MinVolatility float64
	Tier          model.Tier
}

// Options are the tunable aggregation thresholds. Hour and pair cuts are
// tuned independently per view and are deliberately not unified.
type Options struct {
	MinHourSampleFloor int     // absolute floor for the good-hours shortlist
	MinHourSamplePct   float64 // fraction of total ops, whichever is larger
	TopHours           int
	TopPairs           int
	MinPairOps         int // below this a pair classifies as NO_DATA
	PairCuts           []PairCut
	HourCuts           []HourCut
}

func DefaultOptions() Options {
	return Options{
		MinHourSampleFloor: 10,
		MinHourSamplePct:   0.005,
		TopHours:           7,
		TopPairs:           12,
		MinPairOps:         5,
		PairCuts: []PairCut{
			{MinWinRate: 90, MaxVolatility: 15, Tier: model.TierExcellent},
			{MinWinRate: 85, MaxVolatility: 18, Tier: model.TierGood},
			{MinWinRate: 80, MaxVolatility: 25, Tier: model.TierFair},
			{MinWinRate: 75, MaxVolatility: 100, Tier: model.TierRegular},
		},
		HourCuts: []HourCut{
			{MinWinRate: 88, MinVolatility: 78, Tier: model.TierExcellent},
			{MinWinRate: 85, MinVolatility: 74, Tier: model.TierGood},
			{MinWinRate: 82, MinVolatility: 68, Tier: model.TierFair},
		},
	}
}

func classifyPair(winRate, volatility float64, ops int, opts Options) model.Tier {
	if ops < opts.MinPairOps {
		return model.TierNoData
	}
	for _, cut := range opts.PairCuts {
		if winRate >= cut.MinWinRate && volatility <= cut.MaxVolatility {
			return cut.Tier
		}
	}
	return model.TierPoor
}

func classifyHour(winRate, volatility float64, opts Options) model.Tier {
	for _, cut := range opts.HourCuts {
		if winRate >= cut.MinWinRate && volatility >= cut.MinVolatility {
			return cut.Tier
		}
	}
	return model.TierPoor
}

// classifyTrend grades the room's overall win rate.
func classifyTrend(winRate float64) model.Tier {
	switch {
	case winRate >= 85:
		return model.TierExcellent
	case winRate >= 75:
		return model.TierGood
	case winRate >= 65:
		return model.TierFair
	default:
		return model.TierPoor
	}
}
