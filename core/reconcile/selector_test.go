package reconcile

import (
	"testing"
	"time"

	"otc-compare/core/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectQuotes(t *testing.T) {
	day := 24 * time.Hour

	t.Run("EmptyInput", func(t *testing.T) {
		w := SelectQuotes(nil, day, testNow)
		assert.Nil(t, w.Latest)
		assert.Nil(t, w.Lowest)
		assert.True(t, w.Empty())
	})

	t.Run("AllOutsideWindow", func(t *testing.T) {
		events := []feed.QuoteEvent{
			{SBPrice: 10, Timestamp: minutesAgo(24*60 + 1)},
			{SBPrice: 5, Timestamp: minutesAgo(3 * 24 * 60)},
		}
		w := SelectQuotes(events, day, testNow)
		assert.True(t, w.Empty())
		assert.Nil(t, w.Lowest)
	})

	t.Run("LatestAndLowest", func(t *testing.T) {
		events := []feed.QuoteEvent{
			{SBPrice: 90, Timestamp: minutesAgo(300)},
			{SBPrice: 70, Timestamp: minutesAgo(200)},
			{SBPrice: 85, Timestamp: minutesAgo(10)},
			{SBPrice: 95, Timestamp: minutesAgo(100)},
		}
		w := SelectQuotes(events, day, testNow)
		require.NotNil(t, w.Latest)
		require.NotNil(t, w.Lowest)
		assert.Equal(t, 85.0, w.Latest.SBPrice)
		assert.Equal(t, minutesAgo(10), w.Latest.Timestamp)
		assert.Equal(t, 70.0, w.Lowest.SBPrice)
	})

	t.Run("OutsideEventsDoNotAffectResult", func(t *testing.T) {
		inside := []feed.QuoteEvent{
			{SBPrice: 50, Timestamp: minutesAgo(60)},
			{SBPrice: 60, Timestamp: minutesAgo(30)},
		}
		withOutside := append([]feed.QuoteEvent{
			{SBPrice: 1, Timestamp: minutesAgo(2 * 24 * 60)},
			{SBPrice: 99, Timestamp: minutesAgo(24*60 + 5)},
		}, inside...)

		assert.Equal(t, SelectQuotes(inside, day, testNow), SelectQuotes(withOutside, day, testNow))
	})

	t.Run("BoundaryIsInclusive", func(t *testing.T) {
		boundary := testNow.Add(-day).UnixMilli()
		events := []feed.QuoteEvent{
			{SBPrice: 42, Timestamp: boundary},
			{SBPrice: 41, Timestamp: boundary - 1},
		}
		w := SelectQuotes(events, day, testNow)
		require.NotNil(t, w.Latest)
		assert.Equal(t, 42.0, w.Latest.SBPrice)
		assert.Equal(t, 42.0, w.Lowest.SBPrice)
	})

	t.Run("TiesFirstSeenWins", func(t *testing.T) {
		ts := minutesAgo(5)
		events := []feed.QuoteEvent{
			{SBPrice: 30, Timestamp: minutesAgo(50)},
			{SBPrice: 40, Timestamp: ts},
			{SBPrice: 45, Timestamp: ts},
			{SBPrice: 30, Timestamp: minutesAgo(20)},
		}
		w := SelectQuotes(events, day, testNow)
		assert.Equal(t, 40.0, w.Latest.SBPrice)
		assert.Equal(t, minutesAgo(50), w.Lowest.Timestamp)
	})

	t.Run("WiderWindow", func(t *testing.T) {
		events := []feed.QuoteEvent{{SBPrice: 12, Timestamp: minutesAgo(2 * 24 * 60)}}
		assert.True(t, SelectQuotes(events, day, testNow).Empty())
		assert.False(t, SelectQuotes(events, 3*day, testNow).Empty())
	})
}

func TestFormatTimestamp(t *testing.T) {
	ms := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).UnixMilli()
	assert.Equal(t, "03:04:05~02/01/24", FormatTimestamp(ms))

	w := SelectQuotes([]feed.QuoteEvent{{SBPrice: 1, Timestamp: minutesAgo(0)}}, time.Hour, testNow)
	assert.Equal(t, "12:00:00~10/03/24", w.Latest.At)
}
