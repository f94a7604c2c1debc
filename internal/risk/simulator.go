package risk

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Augusto-Mathias/analise-sinais-trading/internal/model"
)

const fallbackDayCount = 30

// Params configure one simulation run. Stakes is the martingale ladder,
// one entry per gale level; a level past the end clamps to the last entry.
type Params struct {
	InitialCapital decimal.Decimal
	Stakes         []decimal.Decimal
	DefaultPayout  float64
	SafetyMultiple int64 // recommended capital = multiple * full ladder loss
}

// Profit computes the net result of a single record against the ladder.
//
// A win at level L pays out only on the winning leg; the stakes burned at
// levels 0..L-1 are sunk. A loss at level L forfeits the ladder up to and
// including L. A doji returns the stake untouched.
func Profit(rec model.TradeRecord, stakes []decimal.Decimal, defaultPayout float64) decimal.Decimal {
	if len(stakes) == 0 {
		return decimal.Zero
	}

	payout := defaultPayout
	if rec.Payout != nil && *rec.Payout > 0 {
		payout = *rec.Payout
	}
	level := rec.GaleLevel
	if level > len(stakes)-1 {
		level = len(stakes) - 1
	}

	switch rec.Result {
	case model.ResultWin:
		gain := stakes[level].Mul(decimal.NewFromFloat(payout))
		if level == 0 {
			return gain
		}
		return gain.Sub(sumStakes(stakes[:level]))
	case model.ResultLoss:
		return sumStakes(stakes[:level+1]).Neg()
	default: // DOJI
		return decimal.Zero
	}
}

// Simulate replays the records in their original order and produces the
// equity curve, drawdown figures, loss-streak probabilities, the capital
// recommendation and monthly projections. Drawdown is path-dependent and
// must come from the single forward pass, not from aggregate counts.
func Simulate(records []model.TradeRecord, params Params) model.RiskReport {
	report := model.RiskReport{
		InitialCapital: params.InitialCapital,
		FinalBalance:   params.InitialCapital,
		MinBalance:     params.InitialCapital,
		EquityCurve:    []decimal.Decimal{params.InitialCapital},
		MaxCycleLoss:   sumStakes(params.Stakes),
	}
	report.RecommendedCapital = report.MaxCycleLoss.Mul(decimal.NewFromInt(params.SafetyMultiple))
	report.CapitalStatus = classifyCapital(params.InitialCapital, report.RecommendedCapital)

	if len(records) == 0 {
		return report
	}

	current := params.InitialCapital
	var wins, losses int
	for _, rec := range records {
		current = current.Add(Profit(rec, params.Stakes, params.DefaultPayout))
		report.EquityCurve = append(report.EquityCurve, current)
		switch rec.Result {
		case model.ResultWin:
			wins++
		case model.ResultLoss:
			losses++
		}
	}
	report.FinalBalance = current
	report.TotalProfit = current.Sub(params.InitialCapital)
	report.AvgProfit = report.TotalProfit.Div(decimal.NewFromInt(int64(len(records))))

	peak := report.EquityCurve[0]
	for _, balance := range report.EquityCurve {
		if balance.GreaterThan(peak) {
			peak = balance
		}
		dd := peak.Sub(balance)
		if dd.GreaterThan(report.MaxDrawdown) {
			report.MaxDrawdown = dd
			if peak.IsPositive() {
				report.MaxDrawdownPct, _ = dd.Div(peak).Mul(decimal.NewFromInt(100)).Float64()
			}
		}
		if balance.LessThan(report.MinBalance) {
			report.MinBalance = balance
		}
	}

	report.LossStreaks = lossStreaks(wins, losses)
	report.Projection = project(report.TotalProfit, distinctDays(records))
	return report
}

// lossStreaks assumes independent outcomes; it is a back-of-envelope
// figure, not a serial-correlation model.
func lossStreaks(wins, losses int) []model.LossStreakProb {
	winRate := 0.0
	if wins+losses > 0 {
		winRate = float64(wins) / float64(wins+losses)
	}
	lossRate := 1 - winRate

	streaks := make([]model.LossStreakProb, 0, 4)
	prob := lossRate
	for n := 2; n <= 5; n++ {
		prob *= lossRate
		streaks = append(streaks, model.LossStreakProb{Length: n, Probability: prob * 100})
	}
	return streaks
}

func project(totalProfit decimal.Decimal, days int) model.MonthlyProjection {
	if days < 1 {
		days = fallbackDayCount
	}
	daily := totalProfit.Div(decimal.NewFromInt(int64(days)))
	monthly := daily.Mul(decimal.NewFromInt(22))
	return model.MonthlyProjection{
		Optimistic:  monthly.Mul(decimal.NewFromFloat(1.5)),
		Realistic:   monthly,
		Pessimistic: monthly.Mul(decimal.NewFromFloat(0.7)),
	}
}

func classifyCapital(capital, recommended decimal.Decimal) model.CapitalStatus {
	switch {
	case capital.GreaterThanOrEqual(recommended):
		return model.CapitalAdequate
	case capital.GreaterThanOrEqual(recommended.Mul(decimal.NewFromFloat(0.7))):
		return model.CapitalAcceptable
	default:
		return model.CapitalInsufficient
	}
}

func distinctDays(records []model.TradeRecord) int {
	seen := make(map[time.Time]struct{})
	for _, rec := range records {
		if rec.Date != nil {
			seen[*rec.Date] = struct{}{}
		}
	}
	return len(seen)
}

func sumStakes(stakes []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, s := range stakes {
		total = total.Add(s)
	}
	return total
}
