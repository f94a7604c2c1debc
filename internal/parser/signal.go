package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Augusto-Mathias/analise-sinais-trading/internal/model"
)

// Resolved lines look like "✅¹ EURUSD-OTC - 14:05:00 - M1 - call - WIN".
// The gale level is encoded as a superscript glued to the status glyph;
// it is a first-class field, not decoration.
var resolvedRe = regexp.MustCompile(
	`(?i)^(?P<check>[✅❌🃏])(?P<sup>[¹²³\d]?)\s*` +
		`(?P<pair>[A-Z0-9_\-]+(?:-OTC)?)\s*-\s*(?P<time>\d{2}:\d{2}:\d{2})\s*-\s*` +
		`(?P<tf>\w+)\s*-\s*(?P<dir>\w+)\s*-\s*(?P<result>WIN|LOSS|DOJI)$`)

// Open-signal blocks carry independent fields, extracted separately.
var (
	signalPairRe   = regexp.MustCompile(`(?i)Ativo:\s*([A-Z0-9_\-]+(?:-OTC)?)`)
	signalTimeRe   = regexp.MustCompile(`(?i)Hor[aá]rio:\s*(\d{2}:\d{2}:\d{2})`)
	signalPayoutRe = regexp.MustCompile(`(?i)Payout:\s*([\d.]+)\s*%`)
)

// Unicode superscripts and plain ASCII digits map to the same levels;
// anything else (including absence) is level 0.
var superscriptLevels = map[string]int{
	"¹": 1,
	"²": 2,
	"³": 3,
	"1": 1,
	"2": 2,
	"3": 3,
}

// ResolvedLine is the typed capture of one resolved-outcome message.
type ResolvedLine struct {
	Pair      string
	Time      string
	Timeframe string
	Direction string
	Result    model.Result
	GaleLevel int
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// CollapseLine folds a multi-line message into a single line, which is
// what the resolved recognizer anchors against.
func CollapseLine(text string) string {
	return strings.TrimSpace(lineBreaks.Replace(text))
}

// ParseResolvedLine matches the collapsed text against the resolved-line
// pattern. It returns ok=false for anything else; most messages in a real
// export are chatter and never match.
func ParseResolvedLine(text string) (ResolvedLine, bool) {
	m := resolvedRe.FindStringSubmatch(CollapseLine(text))
	if m == nil {
		return ResolvedLine{}, false
	}
	group := func(name string) string {
		return m[resolvedRe.SubexpIndex(name)]
	}
	return ResolvedLine{
		Pair:      strings.TrimSpace(group("pair")),
		Time:      strings.TrimSpace(group("time")),
		Timeframe: strings.TrimSpace(group("tf")),
		Direction: strings.TrimSpace(group("dir")),
		Result:    normalizeResult(group("result")),
		GaleLevel: superscriptLevel(group("sup")),
	}, true
}

// HasOpenSignalMarkers reports whether the text is worth running through
// the open-signal recognizer.
func HasOpenSignalMarkers(text string) bool {
	return strings.Contains(text, "Ativo:") || strings.Contains(text, "Payout:")
}

// ParseOpenSignal extracts instrument, time and payout from an open-signal
// block. Instrument and time are both required; payout is optional and a
// malformed percentage is treated as absent.
func ParseOpenSignal(text string) (model.OpenSignal, bool) {
	pair := signalPairRe.FindStringSubmatch(text)
	at := signalTimeRe.FindStringSubmatch(text)
	if pair == nil || at == nil {
		return model.OpenSignal{}, false
	}

	sig := model.OpenSignal{
		Pair: strings.TrimSpace(pair[1]),
		Time: strings.TrimSpace(at[1]),
	}
	if pay := signalPayoutRe.FindStringSubmatch(text); pay != nil {
		if pct, err := strconv.ParseFloat(pay[1], 64); err == nil {
			fraction := pct / 100.0
			sig.Payout = &fraction
		}
	}
	return sig, true
}

// Anything that is not literally WIN or DOJI collapses to LOSS.
func normalizeResult(raw string) model.Result {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "WIN":
		return model.ResultWin
	case "DOJI":
		return model.ResultDoji
	default:
		return model.ResultLoss
	}
}

func superscriptLevel(s string) int {
	if s == "" {
		return 0
	}
	return superscriptLevels[s]
}
