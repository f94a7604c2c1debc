package parser

import (
	"strconv"

	"github.com/Augusto-Mathias/analise-sinais-trading/internal/infrastructure"
	"github.com/Augusto-Mathias/analise-sinais-trading/internal/model"
)

// ExtractRecords turns a raw message collection into trade records.
//
// Pass 1 collects payouts from open-signal blocks, keyed by (pair, time),
// last write wins on duplicates. Pass 2 matches resolved lines, correlates
// the payout by the same key and derives the message date. Messages that
// match neither recognizer are skipped silently.
func ExtractRecords(messages []map[string]any) []model.TradeRecord {
	payouts := make(map[model.SignalKey]*float64)

	for _, msg := range messages {
		text := MessageText(msg)
		if text == "" || !HasOpenSignalMarkers(text) {
			continue
		}
		sig, ok := ParseOpenSignal(text)
		if !ok {
			continue
		}
		payouts[model.SignalKey{Pair: sig.Pair, Time: sig.Time}] = sig.Payout
	}

	var records []model.TradeRecord
	for _, msg := range messages {
		infrastructure.MessagesScanned.Inc()

		text := MessageText(msg)
		if text == "" {
			continue
		}
		line, ok := ParseResolvedLine(text)
		if !ok {
			continue
		}

		rec := model.TradeRecord{
			Pair:      line.Pair,
			Time:      line.Time,
			Hour:      hourOf(line.Time),
			Timeframe: line.Timeframe,
			Direction: line.Direction,
			Result:    line.Result,
			GaleLevel: line.GaleLevel,
		}
		if payout, found := payouts[model.SignalKey{Pair: line.Pair, Time: line.Time}]; found {
			rec.Payout = payout
		}
		if d, found := MessageDate(msg); found {
			rec.Date = &d
		}

		records = append(records, rec)
		infrastructure.RecordsExtracted.Inc()
	}
	return records
}

func hourOf(hhmmss string) int {
	if len(hhmmss) < 2 {
		return 0
	}
	h, err := strconv.Atoi(hhmmss[:2])
	if err != nil {
		return 0
	}
	return h
}
