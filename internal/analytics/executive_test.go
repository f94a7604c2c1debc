package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Augusto-Mathias/analise-sinais-trading/internal/model"
)

func TestBuildExecutive(t *testing.T) {
	sum := model.Summary{
		WinRate:   88.5,
		GoodHours: []string{"09:00-10:00", "14:00-15:00"},
		TopPairs:  []string{"EURUSD-OTC", "GBPUSD"},
		Days:      2,
		DateTo:    dateOf(2023, time.December, 27),
		Gale: model.GaleSummary{
			Levels: []model.LevelStats{
				{Level: 0, Ops: 40},
				{Level: 1, Ops: 8},
				{Level: 2, Ops: 2},
			},
		},
	}

	exec := BuildExecutive(sum, decimal.NewFromInt(44), 500)

	assert.Equal(t, "27/12/2023", exec.Period)
	assert.InDelta(t, 88.5, exec.WinRate, 1e-9)
	assert.Equal(t, []string{"09:00-10:00", "14:00-15:00"}, exec.GoodHours)
	assert.Equal(t, 40, exec.G0)
	assert.Equal(t, 8, exec.G1)
	assert.Equal(t, 2, exec.G2)
	assert.Equal(t, 500.0, exec.Capital)

	// 44 over 2 days is 22/day; 22 * 22 trading days = 484, spread 1.7x.
	assert.Equal(t, 484.0, exec.ProjMin)
	assert.Equal(t, 823.0, exec.ProjMax)
	assert.Equal(t, 22, exec.DailyTarget)
}

func TestBuildExecutive_NegativeProfitFloorsProjection(t *testing.T) {
	sum := model.Summary{Days: 1}
	exec := BuildExecutive(sum, decimal.NewFromInt(-10), 500)

	assert.Equal(t, "Period", exec.Period)
	assert.Equal(t, 0.0, exec.ProjMin)
	assert.Equal(t, 0.0, exec.ProjMax)
	assert.Equal(t, -10, exec.DailyTarget)
}

func TestBuildExecutive_SmallDailyUsesFallbackTarget(t *testing.T) {
	sum := model.Summary{Days: 1}
	exec := BuildExecutive(sum, decimal.NewFromFloat(0.5), 500)
	assert.Equal(t, 15, exec.DailyTarget)
}

func TestBuildExecutive_NoDaysTreatedAsOne(t *testing.T) {
	exec := BuildExecutive(model.Summary{}, decimal.NewFromInt(44), 500)
	assert.Equal(t, 44*22.0, exec.ProjMin)
}
