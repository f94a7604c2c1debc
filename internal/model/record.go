package model

import "time"

// Result is the final outcome of a resolved trade.
type Result string

const (
	ResultWin  Result = "WIN"
	ResultLoss Result = "LOSS"
	ResultDoji Result = "DOJI"
)

// OpenSignal is the pre-trade announcement extracted from a signal block.
// Payout is nil when the block carries no parseable percentage.
type OpenSignal struct {
	Pair   string   `json:"pair"`
	Time   string   `json:"time"`
	Payout *float64 `json:"payout,omitempty"`
}

// SignalKey correlates an open signal with its resolved outcome.
type SignalKey struct {
	Pair string
	Time string
}

// TradeRecord is one resolved operation extracted from the chat export.
// GaleLevel 0 means the trade resolved on the initial entry.
type TradeRecord struct {
	Pair      string     `json:"pair"`
	Time      string     `json:"time"` // HH:MM:SS
	Hour      int        `json:"hour"`
	Timeframe string     `json:"tf"`
	Direction string     `json:"direction"`
	Result    Result     `json:"result"`
	GaleLevel int        `json:"gale_level"`
	Payout    *float64   `json:"payout,omitempty"`
	Date      *time.Time `json:"msg_date,omitempty"`
}
