package model

import "time"

// Tier is a qualitative classification band.
type Tier string

const (
	TierExcellent Tier = "EXCELLENT"
	TierGood      Tier = "GOOD"
	TierFair      Tier = "FAIR"
	TierRegular   Tier = "REGULAR"
	TierPoor      Tier = "POOR"
	TierNoData    Tier = "NO_DATA"
)

// LevelStats describes the operations that resolved at one gale level.
type LevelStats struct {
	Level        int     `json:"level"`
	Ops          int     `json:"ops"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	PctOfTotal   float64 `json:"pct_of_total"`
	WinRate      float64 `json:"win_rate"`
	RecoveryRate float64 `json:"recovery_rate"`
}

// GaleSummary aggregates outcomes by retry tier. The combined rates pool
// wins and losses across levels 0..N.
type GaleSummary struct {
	Levels        []LevelStats `json:"levels"`
	WinRateEntry  float64      `json:"win_rate_entry"`   // level 0 only
	WinRateWithG1 float64      `json:"win_rate_with_g1"` // levels 0..1
	WinRateWithG2 float64      `json:"win_rate_with_g2"` // all levels
	FailuresG1    int          `json:"failures_g1"`
	FailuresG2    int          `json:"failures_g2"`
}

// HourlyBucket aggregates outcomes for one hour of the day.
// Volatility for hours is win-rate-as-consistency, not loss rate.
type HourlyBucket struct {
	Hour       int     `json:"hour"`
	Range      string  `json:"range"` // "09:00-10:00"
	Ops        int     `json:"ops"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Dojis      int     `json:"dojis"`
	WinRate    float64 `json:"win_rate"`
	Volatility float64 `json:"volatility"`
	Tier       Tier    `json:"tier"`
}

// WeekdayBucket aggregates outcomes for one day of the week (0=Monday).
type WeekdayBucket struct {
	Weekday int     `json:"weekday"`
	Name    string  `json:"name"`
	Ops     int     `json:"ops"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"win_rate"`
}

// PeriodBucket aggregates outcomes for a slice of the month.
type PeriodBucket struct {
	Period  string  `json:"period"` // "start", "mid", "end"
	Range   string  `json:"range"`  // "1-10", "11-20", "21-31"
	Ops     int     `json:"ops"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"win_rate"`
}

// TokenBucket aggregates outcomes for one timeframe or direction token.
type TokenBucket struct {
	Token   string  `json:"token"`
	Ops     int     `json:"ops"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"win_rate"`
}

// PairBucket aggregates outcomes per instrument. Volatility here is the
// loss rate; Tier is NO_DATA below the minimum sample size.
type PairBucket struct {
	Pair       string  `json:"pair"`
	Ops        int     `json:"ops"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Dojis      int     `json:"dojis"`
	G0         int     `json:"g0"`
	G1         int     `json:"g1"`
	G2         int     `json:"g2"`
	PctG1      float64 `json:"pct_g1"`
	PctG2      float64 `json:"pct_g2"`
	WinRate    float64 `json:"win_rate"`
	Volatility float64 `json:"volatility"`
	Tier       Tier    `json:"tier"`
}

// WeeklyBucket aggregates outcomes for one ISO week.
type WeeklyBucket struct {
	Year    int       `json:"year"`
	Week    int       `json:"week"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Ops     int       `json:"ops"`
	Wins    int       `json:"wins"`
	Losses  int       `json:"losses"`
	WinRate float64   `json:"win_rate"`
}

// Summary is the full set of derived metrics for one record set.
// Recomputed fresh on every analysis run, never persisted as-is.
type Summary struct {
	TotalOps int     `json:"total_ops"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Dojis    int     `json:"dojis"`
	WinRate  float64 `json:"win_rate"`
	Trend    Tier    `json:"trend"`

	Gale       GaleSummary     `json:"gale"`
	Hourly     []HourlyBucket  `json:"hourly"`
	GoodHours  []string        `json:"good_hours"`
	Weekdays   []WeekdayBucket `json:"weekdays"`
	Periods    []PeriodBucket  `json:"periods"`
	Timeframes []TokenBucket   `json:"timeframes"`
	Directions []TokenBucket   `json:"directions"`
	Pairs      []PairBucket    `json:"pairs"`
	TopPairs   []string        `json:"top_pairs"`
	Weekly     []WeeklyBucket  `json:"weekly"`

	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`
	Days     int        `json:"days"` // distinct record dates
}

// ExecutiveSummary is the condensed view handed to the presentation layer.
type ExecutiveSummary struct {
	Period      string   `json:"period"` // latest record date, dd/mm/yyyy
	WinRate     float64  `json:"win_rate"`
	GoodHours   []string `json:"good_hours"`
	TopPairs    []string `json:"top_pairs"`
	G0          int      `json:"g0"`
	G1          int      `json:"g1"`
	G2          int      `json:"g2"`
	Capital     float64  `json:"capital"`
	ProjMin     float64  `json:"proj_min"`
	ProjMax     float64  `json:"proj_max"`
	DailyTarget int      `json:"daily_target"`
}
