package parser

import (
	"strings"
	"time"
)

// Candidate keys probed in order; chat exports are not consistent about
// where the payload and timestamp live.
var (
	textKeys = []string{"text", "message.text", "message", "message_text"}
	dateKeys = []string{"date", "message.date", "message.date_unixtime", "message.date_unixtime_str"}
)

// MessageText extracts the textual payload from a raw message mapping.
// A value that is a list of fragments (Telegram-style rich text) is
// concatenated in order. Returns "" when no candidate key holds text.
func MessageText(msg map[string]any) string {
	for _, k := range textKeys {
		switch v := msg[k].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return v
			}
		case []any:
			var b strings.Builder
			for _, frag := range v {
				switch f := frag.(type) {
				case string:
					b.WriteString(f)
				case map[string]any:
					if s, ok := f["text"].(string); ok {
						b.WriteString(s)
					}
				}
			}
			if strings.TrimSpace(b.String()) != "" {
				return b.String()
			}
		}
	}
	return ""
}

// MessageDate derives a calendar date from the message's own timestamp
// fields, falling back to parsing a date out of the raw text.
func MessageDate(msg map[string]any) (time.Time, bool) {
	for _, k := range dateKeys {
		v, present := msg[k]
		if !present || v == nil {
			continue
		}
		if d, ok := ParseDate(v); ok {
			return d, true
		}
		break
	}
	if d, ok := ParseDate(MessageText(msg)); ok {
		return d, true
	}
	return time.Time{}, false
}

// FilterByDate keeps the messages whose date falls inside [from, to].
// Messages without a parseable date are dropped from a filtered run.
func FilterByDate(messages []map[string]any, from, to time.Time) []map[string]any {
	filtered := make([]map[string]any, 0, len(messages))
	for _, msg := range messages {
		d, ok := MessageDate(msg)
		if !ok {
			continue
		}
		if d.Before(from) || d.After(to) {
			continue
		}
		filtered = append(filtered, msg)
	}
	return filtered
}
