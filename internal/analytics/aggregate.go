package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/Augusto-Mathias/analise-sinais-trading/internal/model"
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Summarize is a pure function of a record set: it groups records by gale
// level, hour, weekday, month period, timeframe, direction and instrument
// and computes win rates and classification tiers. An empty record set
// yields an explicit empty summary, never an error.
func Summarize(records []model.TradeRecord, opts Options) model.Summary {
	if len(records) == 0 {
		return model.Summary{Trend: model.TierNoData}
	}

	sum := model.Summary{TotalOps: len(records)}
	for _, rec := range records {
		switch rec.Result {
		case model.ResultWin:
			sum.Wins++
		case model.ResultLoss:
			sum.Losses++
		case model.ResultDoji:
			sum.Dojis++
		}
	}
	sum.WinRate = winRate(sum.Wins, sum.Losses)
	sum.Trend = classifyTrend(sum.WinRate)

	sum.Gale = summarizeGale(records, sum.Wins, sum.Losses)
	sum.Hourly = summarizeHours(records, opts)
	sum.GoodHours = shortlistHours(sum.Hourly, len(records), opts)
	sum.Weekdays = summarizeWeekdays(records)
	sum.Periods = summarizePeriods(records)
	sum.Timeframes = summarizeTokens(records, func(r model.TradeRecord) string { return r.Timeframe })
	sum.Directions = summarizeTokens(records, func(r model.TradeRecord) string { return r.Direction })
	sum.Pairs = summarizePairs(records, opts)
	for i, p := range sum.Pairs {
		if i >= opts.TopPairs {
			break
		}
		sum.TopPairs = append(sum.TopPairs, p.Pair)
	}
	sum.Weekly = summarizeWeeks(records)

	sum.DateFrom, sum.DateTo, sum.Days = dateSpan(records)
	return sum
}

// winRate excludes dojis from the denominator: a drawn trade is neither a
// win nor a loss for rate purposes.
func winRate(wins, losses int) float64 {
	if wins+losses == 0 {
		return 0
	}
	return float64(wins) / float64(wins+losses) * 100
}

func summarizeGale(records []model.TradeRecord, totalWins, totalLosses int) model.GaleSummary {
	total := len(records)
	gale := model.GaleSummary{}

	var winsThroughG1, lossesThroughG1 int
	for level := 0; level <= 2; level++ {
		var ops, wins, losses int
		for _, rec := range records {
			if rec.GaleLevel != level {
				continue
			}
			ops++
			switch rec.Result {
			case model.ResultWin:
				wins++
			case model.ResultLoss:
				losses++
			}
		}

		recovery := 0.0
		if ops > 0 {
			recovery = float64(wins) / float64(ops) * 100
		}
		gale.Levels = append(gale.Levels, model.LevelStats{
			Level:        level,
			Ops:          ops,
			Wins:         wins,
			Losses:       losses,
			PctOfTotal:   float64(ops) / float64(total) * 100,
			WinRate:      winRate(wins, losses),
			RecoveryRate: recovery,
		})

		if level <= 1 {
			winsThroughG1 += wins
			lossesThroughG1 += losses
		}
		switch level {
		case 1:
			gale.FailuresG1 = losses
		case 2:
			gale.FailuresG2 = losses
		}
	}

	gale.WinRateEntry = gale.Levels[0].WinRate
	gale.WinRateWithG1 = winRate(winsThroughG1, lossesThroughG1)
	gale.WinRateWithG2 = winRate(totalWins, totalLosses)
	return gale
}

func summarizeHours(records []model.TradeRecord, opts Options) []model.HourlyBucket {
	byHour := make(map[int]*model.HourlyBucket)
	for _, rec := range records {
		b, ok := byHour[rec.Hour]
		if !ok {
			b = &model.HourlyBucket{
				Hour:  rec.Hour,
				Range: fmt.Sprintf("%02d:00-%02d:00", rec.Hour, rec.Hour+1),
			}
			byHour[rec.Hour] = b
		}
		b.Ops++
		switch rec.Result {
		case model.ResultWin:
			b.Wins++
		case model.ResultLoss:
			b.Losses++
		case model.ResultDoji:
			b.Dojis++
		}
	}

	hours := make([]model.HourlyBucket, 0, len(byHour))
	for _, b := range byHour {
		b.WinRate = winRate(b.Wins, b.Losses)
		// Hour volatility is win consistency over all ops, dojis included.
		b.Volatility = float64(b.Wins) / float64(b.Ops) * 100
		b.Tier = classifyHour(b.WinRate, b.Volatility, opts)
		hours = append(hours, *b)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i].Hour < hours[j].Hour })
	return hours
}

// shortlistHours picks the best hours with enough volume to trust the
// rate, then re-sorts them chronologically for display.
func shortlistHours(hours []model.HourlyBucket, totalOps int, opts Options) []string {
	minSample := opts.MinHourSampleFloor
	if pct := int(opts.MinHourSamplePct * float64(totalOps)); pct > minSample {
		minSample = pct
	}

	candidates := make([]model.HourlyBucket, 0, len(hours))
	for _, h := range hours {
		if h.Ops >= minSample {
			candidates = append(candidates, h)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].WinRate != candidates[j].WinRate {
			return candidates[i].WinRate > candidates[j].WinRate
		}
		return candidates[i].Ops > candidates[j].Ops
	})
	if len(candidates) > opts.TopHours {
		candidates = candidates[:opts.TopHours]
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Hour < candidates[j].Hour })

	ranges := make([]string, 0, len(candidates))
	for _, h := range candidates {
		ranges = append(ranges, h.Range)
	}
	return ranges
}

func summarizeWeekdays(records []model.TradeRecord) []model.WeekdayBucket {
	byDay := make(map[int]*model.WeekdayBucket)
	for _, rec := range records {
		if rec.Date == nil {
			continue
		}
		idx := (int(rec.Date.Weekday()) + 6) % 7 // 0=Monday
		b, ok := byDay[idx]
		if !ok {
			b = &model.WeekdayBucket{Weekday: idx, Name: weekdayNames[idx]}
			byDay[idx] = b
		}
		tally(&b.Ops, &b.Wins, &b.Losses, rec.Result)
	}

	days := make([]model.WeekdayBucket, 0, len(byDay))
	for _, b := range byDay {
		b.WinRate = winRate(b.Wins, b.Losses)
		days = append(days, *b)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Weekday < days[j].Weekday })
	return days
}

func summarizePeriods(records []model.TradeRecord) []model.PeriodBucket {
	periods := []model.PeriodBucket{
		{Period: "start", Range: "1-10"},
		{Period: "mid", Range: "11-20"},
		{Period: "end", Range: "21-31"},
	}
	for _, rec := range records {
		if rec.Date == nil {
			continue
		}
		idx := 2
		switch day := rec.Date.Day(); {
		case day <= 10:
			idx = 0
		case day <= 20:
			idx = 1
		}
		tally(&periods[idx].Ops, &periods[idx].Wins, &periods[idx].Losses, rec.Result)
	}

	kept := periods[:0]
	for _, p := range periods {
		if p.Ops == 0 {
			continue
		}
		p.WinRate = winRate(p.Wins, p.Losses)
		kept = append(kept, p)
	}
	return kept
}

func summarizeTokens(records []model.TradeRecord, key func(model.TradeRecord) string) []model.TokenBucket {
	byToken := make(map[string]*model.TokenBucket)
	for _, rec := range records {
		token := key(rec)
		b, ok := byToken[token]
		if !ok {
			b = &model.TokenBucket{Token: token}
			byToken[token] = b
		}
		tally(&b.Ops, &b.Wins, &b.Losses, rec.Result)
	}

	buckets := make([]model.TokenBucket, 0, len(byToken))
	for _, b := range byToken {
		b.WinRate = winRate(b.Wins, b.Losses)
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Ops != buckets[j].Ops {
			return buckets[i].Ops > buckets[j].Ops
		}
		return buckets[i].Token < buckets[j].Token
	})
	return buckets
}

func summarizePairs(records []model.TradeRecord, opts Options) []model.PairBucket {
	byPair := make(map[string]*model.PairBucket)
	for _, rec := range records {
		b, ok := byPair[rec.Pair]
		if !ok {
			b = &model.PairBucket{Pair: rec.Pair}
			byPair[rec.Pair] = b
		}
		b.Ops++
		switch rec.Result {
		case model.ResultWin:
			b.Wins++
		case model.ResultLoss:
			b.Losses++
		case model.ResultDoji:
			b.Dojis++
		}
		switch rec.GaleLevel {
		case 0:
			b.G0++
		case 1:
			b.G1++
		case 2:
			b.G2++
		}
	}

	pairs := make([]model.PairBucket, 0, len(byPair))
	for _, b := range byPair {
		b.WinRate = winRate(b.Wins, b.Losses)
		if b.Wins+b.Losses > 0 {
			b.Volatility = float64(b.Losses) / float64(b.Wins+b.Losses) * 100
		}
		b.PctG1 = float64(b.G1) / float64(b.Ops) * 100
		b.PctG2 = float64(b.G2) / float64(b.Ops) * 100
		b.Tier = classifyPair(b.WinRate, b.Volatility, b.Ops, opts)
		pairs = append(pairs, *b)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Ops != pairs[j].Ops {
			return pairs[i].Ops > pairs[j].Ops
		}
		return pairs[i].Pair < pairs[j].Pair
	})
	return pairs
}

func summarizeWeeks(records []model.TradeRecord) []model.WeeklyBucket {
	type weekKey struct{ year, week int }
	byWeek := make(map[weekKey]*model.WeeklyBucket)
	for _, rec := range records {
		if rec.Date == nil {
			continue
		}
		year, week := rec.Date.ISOWeek()
		k := weekKey{year, week}
		b, ok := byWeek[k]
		if !ok {
			b = &model.WeeklyBucket{Year: year, Week: week, Start: *rec.Date, End: *rec.Date}
			byWeek[k] = b
		}
		if rec.Date.Before(b.Start) {
			b.Start = *rec.Date
		}
		if rec.Date.After(b.End) {
			b.End = *rec.Date
		}
		tally(&b.Ops, &b.Wins, &b.Losses, rec.Result)
	}

	weeks := make([]model.WeeklyBucket, 0, len(byWeek))
	for _, b := range byWeek {
		b.WinRate = winRate(b.Wins, b.Losses)
		weeks = append(weeks, *b)
	}
	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].Year != weeks[j].Year {
			return weeks[i].Year < weeks[j].Year
		}
		return weeks[i].Week < weeks[j].Week
	})
	return weeks
}

func dateSpan(records []model.TradeRecord) (from, to *time.Time, days int) {
	seen := make(map[time.Time]struct{})
	for _, rec := range records {
		if rec.Date == nil {
			continue
		}
		d := *rec.Date
		seen[d] = struct{}{}
		if from == nil || d.Before(*from) {
			from = &d
		}
		if to == nil || d.After(*to) {
			to = &d
		}
	}
	return from, to, len(seen)
}

func tally(ops, wins, losses *int, result model.Result) {
	*ops++
	switch result {
	case model.ResultWin:
		*wins++
	case model.ResultLoss:
		*losses++
	}
}
