package reconcile

import (
	"time"

	"otc-compare/core/feed"
)

// TimestampLayout renders quote times as HH:MM:SS~DD/MM/YY.
const TimestampLayout = "15:04:05~02/01/06"

// FormatTimestamp renders a millisecond timestamp in UTC for display.
func FormatTimestamp(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(TimestampLayout)
}

// SelectQuotes picks the latest and the lowest quote among events with
// timestamp >= now - window. The boundary is inclusive. On ties the event
// seen first in feed order wins.
func SelectQuotes(events []feed.QuoteEvent, window time.Duration, now time.Time) QuoteWindow {
	cutoff := now.Add(-window).UnixMilli()

	var latest, lowest *feed.QuoteEvent
	for i := range events {
		ev := &events[i]
		if ev.Timestamp < cutoff {
			continue
		}
		if latest == nil || ev.Timestamp > latest.Timestamp {
			latest = ev
		}
		if lowest == nil || ev.SBPrice < lowest.SBPrice {
			lowest = ev
		}
	}

	if latest == nil {
		return QuoteWindow{}
	}
	return QuoteWindow{
		Latest: toQuote(*latest),
		Lowest: toQuote(*lowest),
	}
}

func toQuote(ev feed.QuoteEvent) *Quote {
	return &Quote{
		SBPrice:   ev.SBPrice,
		Timestamp: ev.Timestamp,
		At:        FormatTimestamp(ev.Timestamp),
	}
}
