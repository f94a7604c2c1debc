package analytics

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Augusto-Mathias/analise-sinais-trading/internal/model"
)

const (
	tradingDaysPerMonth = 22
	projectionSpread    = 1.7
	fallbackDailyTarget = 15
)

// BuildExecutive condenses a summary and the simulated profit into the
// executive view: period label, projections and a daily target. Profit is
// spread over the distinct record dates (1 if none are dated).
func BuildExecutive(sum model.Summary, totalProfit decimal.Decimal, capital float64) model.ExecutiveSummary {
	days := sum.Days
	if days < 1 {
		days = 1
	}
	daily, _ := totalProfit.Div(decimal.NewFromInt(int64(days))).Float64()

	projMin := math.Max(0, daily*tradingDaysPerMonth)
	projMax := projMin * projectionSpread

	target := fallbackDailyTarget
	if math.Abs(daily) >= 1 {
		target = int(math.Round(daily))
	}

	period := "Period"
	if sum.DateTo != nil {
		period = sum.DateTo.Format("02/01/2006")
	}

	return model.ExecutiveSummary{
		Period:      period,
		WinRate:     sum.WinRate,
		GoodHours:   sum.GoodHours,
		TopPairs:    sum.TopPairs,
		G0:          levelOps(sum, 0),
		G1:          levelOps(sum, 1),
		G2:          levelOps(sum, 2),
		Capital:     capital,
		ProjMin:     math.Round(projMin),
		ProjMax:     math.Round(projMax),
		DailyTarget: target,
	}
}

func levelOps(sum model.Summary, level int) int {
	for _, l := range sum.Gale.Levels {
		if l.Level == level {
			return l.Ops
		}
	}
	return 0
}
