package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Augusto-Mathias/analise-sinais-trading/internal/model"
)

func msg(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return m
}

func TestExtractRecords_CorrelatesPayout(t *testing.T) {
	messages := []map[string]any{
		msg("text", "bom dia, preparem-se"),
		msg("text", "🔥 SINAL\nAtivo: EURUSD-OTC\nHorário: 14:05:00\nPayout: 87%"),
		msg("text", "✅¹ EURUSD-OTC - 14:05:00 - M1 - call - WIN", "date", "2023-12-25T14:06:00"),
	}

	records := ExtractRecords(messages)
	if !assert.Len(t, records, 1) {
		return
	}

	rec := records[0]
	assert.Equal(t, "EURUSD-OTC", rec.Pair)
	assert.Equal(t, "14:05:00", rec.Time)
	assert.Equal(t, 14, rec.Hour)
	assert.Equal(t, "M1", rec.Timeframe)
	assert.Equal(t, "call", rec.Direction)
	assert.Equal(t, model.ResultWin, rec.Result)
	assert.Equal(t, 1, rec.GaleLevel)
	if assert.NotNil(t, rec.Payout) {
		assert.InDelta(t, 0.87, *rec.Payout, 1e-9)
	}
	if assert.NotNil(t, rec.Date) {
		assert.True(t, rec.Date.Equal(time.Date(2023, 12, 25, 0, 0, 0, 0, time.Local)))
	}
}

func TestExtractRecords_NoMatchingSignal(t *testing.T) {
	messages := []map[string]any{
		msg("text", "✅ GBPUSD - 09:30:00 - M5 - put - WIN"),
	}

	records := ExtractRecords(messages)
	if assert.Len(t, records, 1) {
		assert.Nil(t, records[0].Payout)
		assert.Nil(t, records[0].Date)
	}
}

func TestExtractRecords_LastPayoutWins(t *testing.T) {
	messages := []map[string]any{
		msg("text", "Ativo: EURUSD\nHorário: 10:00:00\nPayout: 80%"),
		msg("text", "Ativo: EURUSD\nHorário: 10:00:00\nPayout: 91%"),
		msg("text", "❌ EURUSD - 10:00:00 - M1 - call - LOSS"),
	}

	records := ExtractRecords(messages)
	if assert.Len(t, records, 1) && assert.NotNil(t, records[0].Payout) {
		assert.InDelta(t, 0.91, *records[0].Payout, 1e-9)
	}
}

func TestExtractRecords_SkipsChatter(t *testing.T) {
	messages := []map[string]any{
		msg("text", "bora bora"),
		msg("text", ""),
		msg("other_key", "✅ EURUSD - 10:00:00 - M1 - call - WIN"),
		msg("text", 42),
	}
	assert.Empty(t, ExtractRecords(messages))
}

func TestMessageText_FragmentList(t *testing.T) {
	m := msg("text", []any{
		"✅ EURUSD - ",
		map[string]any{"type": "bold", "text": "10:00:00"},
		" - M1 - call - WIN",
	})
	assert.Equal(t, "✅ EURUSD - 10:00:00 - M1 - call - WIN", MessageText(m))
}

func TestMessageText_AlternateKeys(t *testing.T) {
	assert.Equal(t, "hello", MessageText(msg("message", "hello")))
	assert.Equal(t, "hi", MessageText(msg("message_text", "hi")))
	assert.Equal(t, "", MessageText(msg("unrelated", "x")))
}

func TestMessageDate_KeyPrecedence(t *testing.T) {
	m := msg(
		"date", "2023-12-25",
		"message.date", "2024-01-01",
	)
	d, ok := MessageDate(m)
	assert.True(t, ok)
	assert.True(t, d.Equal(time.Date(2023, 12, 25, 0, 0, 0, 0, time.Local)))
}

func TestMessageDate_UnixtimeString(t *testing.T) {
	d, ok := MessageDate(msg("message.date_unixtime", "1700000000"))
	assert.True(t, ok)
	assert.False(t, d.IsZero())
}

func TestMessageDate_TextFallback(t *testing.T) {
	d, ok := MessageDate(msg("text", "25/12/2023"))
	assert.True(t, ok)
	assert.True(t, d.Equal(time.Date(2023, 12, 25, 0, 0, 0, 0, time.Local)))

	_, ok = MessageDate(msg("text", "sem data aqui"))
	assert.False(t, ok)
}

func TestFilterByDate(t *testing.T) {
	messages := []map[string]any{
		msg("text", "a", "date", "2023-12-24"),
		msg("text", "b", "date", "2023-12-25"),
		msg("text", "c", "date", "2023-12-26"),
		msg("text", "no date at all"),
	}

	from := time.Date(2023, 12, 25, 0, 0, 0, 0, time.Local)
	to := time.Date(2023, 12, 25, 0, 0, 0, 0, time.Local)

	filtered := FilterByDate(messages, from, to)
	if assert.Len(t, filtered, 1) {
		assert.Equal(t, "b", filtered[0]["text"])
	}
}
