package model

import "github.com/shopspring/decimal"

// CapitalStatus classifies the starting capital against the recommendation.
type CapitalStatus string

const (
	CapitalAdequate     CapitalStatus = "ADEQUATE"
	CapitalAcceptable   CapitalStatus = "ACCEPTABLE"
	CapitalInsufficient CapitalStatus = "INSUFFICIENT"
)

// LossStreakProb is the probability of N consecutive losses assuming
// independent outcomes.
type LossStreakProb struct {
	Length      int     `json:"length"`
	Probability float64 `json:"probability"` // percent
}

// MonthlyProjection extrapolates the simulated daily profit over 22
// trading days.
type MonthlyProjection struct {
	Optimistic  decimal.Decimal `json:"optimistic"`  // daily * 22 * 1.5
	Realistic   decimal.Decimal `json:"realistic"`   // daily * 22
	Pessimistic decimal.Decimal `json:"pessimistic"` // daily * 22 * 0.7
}

// RiskReport is the result of replaying a record set against a stake
// ladder. The equity curve is path-dependent: its order matches the
// original record order.
type RiskReport struct {
	InitialCapital decimal.Decimal   `json:"initial_capital"`
	FinalBalance   decimal.Decimal   `json:"final_balance"`
	TotalProfit    decimal.Decimal   `json:"total_profit"`
	AvgProfit      decimal.Decimal   `json:"avg_profit"`
	EquityCurve    []decimal.Decimal `json:"equity_curve"`
	MaxDrawdown    decimal.Decimal   `json:"max_drawdown"`
	MaxDrawdownPct float64           `json:"max_drawdown_pct"`
	MinBalance     decimal.Decimal   `json:"min_balance"`

	LossStreaks []LossStreakProb `json:"loss_streaks"`

	MaxCycleLoss       decimal.Decimal `json:"max_cycle_loss"` // full ladder lost once
	RecommendedCapital decimal.Decimal `json:"recommended_capital"`
	CapitalStatus      CapitalStatus   `json:"capital_status"`

	Projection MonthlyProjection `json:"projection"`
}
