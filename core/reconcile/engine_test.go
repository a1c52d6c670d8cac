package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"otc-compare/core/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newFixture() *fakeSource {
	return &fakeSource{
		catalog: []feed.CatalogEntry{
			{ItemID: 114, Name: "SUPER|brie+", GoldPrice: price(10)},
			{ItemID: 1, Name: "Cheap On Discord", GoldPrice: price(1000)},
			{ItemID: 2, Name: "Cheap On Marketplace", GoldPrice: price(1000)},
			{ItemID: 3, Name: "Not Listed", GoldPrice: price(500)},
			{ItemID: 4, Name: "Stale Quotes", GoldPrice: price(700)},
			{ItemID: 5, Name: "Untraded", GoldPrice: nil},
		},
		listings: []feed.ListingReference{
			{ItemID: 1, ListingType: "sb"},
			{ItemID: 2, ListingType: "sb"},
			{ItemID: 4, ListingType: "map"},
			{ItemID: 5, ListingType: "sb"},
		},
		quotes: map[int64][]feed.QuoteEvent{
			1: {{SBPrice: 90, Timestamp: minutesAgo(120)}, {SBPrice: 80, Timestamp: minutesAgo(5)}},
			2: {{SBPrice: 150, Timestamp: minutesAgo(30)}},
			4: {{SBPrice: 10, Timestamp: minutesAgo(3 * 24 * 60)}},
			5: {{SBPrice: 20, Timestamp: minutesAgo(1)}},
		},
	}
}

func newTestRun(src Source, opts Options) *Run {
	if opts.Pricing == (Config{}) {
		opts.Pricing = testPricing()
	}
	opts.Now = func() time.Time { return testNow }
	return NewRun(context.Background(), src, opts, zap.NewNop())
}

func TestNewRun_ResolvesReferenceOnce(t *testing.T) {
	src := newFixture()
	run := newTestRun(src, Options{})

	sbGold, err := run.SBGoldPrice()
	require.NoError(t, err)
	assert.Equal(t, 10.0, sbGold)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 6, run.Catalog().Len())

	// Catalog changes after the run started are not observed
	src.catalog[0].GoldPrice = price(99)
	_, err = run.CompareAll(context.Background())
	require.NoError(t, err)
	sbGold, _ = run.SBGoldPrice()
	assert.Equal(t, 10.0, sbGold)
	assert.Equal(t, int32(1), src.catalogCalls.Load())
}

func TestNewRun_MissingReference(t *testing.T) {
	src := newFixture()
	src.catalog = src.catalog[1:]

	core, logs := observer.New(zapcore.WarnLevel)
	run := NewRun(context.Background(), src, Options{Pricing: testPricing(), Now: func() time.Time { return testNow }}, zap.New(core))

	_, err := run.SBGoldPrice()
	assert.ErrorIs(t, err, ErrMissingReferencePrice)
	assert.Equal(t, 1, logs.Len())

	records, err := run.CompareAll(context.Background())
	require.NoError(t, err)
	for _, r := range records {
		assert.Equal(t, Undetermined, r.Recommendation, r.Name)
		assert.Nil(t, r.DiscordGoldPrice)
		assert.Nil(t, r.SBDelta)
	}
}

func TestNewRun_EmptyFeeds(t *testing.T) {
	run := newTestRun(&fakeSource{}, Options{})

	_, err := run.CompareItem(context.Background(), "Anything", nil)
	assert.ErrorIs(t, err, ErrItemNotFound)

	records, err := run.CompareAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRun_CompareItem(t *testing.T) {
	run := newTestRun(newFixture(), Options{})
	ctx := context.Background()

	t.Run("Live", func(t *testing.T) {
		rec, err := run.CompareItem(ctx, "Cheap On Discord", nil)
		require.NoError(t, err)

		assert.Equal(t, int64(1), rec.ItemID)
		assert.Equal(t, "sb", rec.ListingType)
		assert.Equal(t, CheaperOnDiscord, rec.Recommendation)
		require.NotNil(t, rec.DiscordSBPrice)
		assert.Equal(t, 80.0, *rec.DiscordSBPrice)
		assert.Equal(t, 800.0, *rec.DiscordGoldPrice)
		assert.Equal(t, 111.11, *rec.SBRequired)
		require.NotNil(t, rec.Quotes.Lowest)
		assert.Equal(t, 80.0, rec.Quotes.Lowest.SBPrice)
		assert.False(t, rec.ManualPrice)
	})

	t.Run("ManualOverride", func(t *testing.T) {
		src := newFixture()
		run := newTestRun(src, Options{})

		rec, err := run.CompareItem(ctx, "Not Listed", price(40))
		require.NoError(t, err)

		assert.True(t, rec.ManualPrice)
		assert.Equal(t, 40.0, *rec.DiscordSBPrice)
		// 500/(10*0.9) = 55.56 > 40
		assert.Equal(t, CheaperOnDiscord, rec.Recommendation)
		assert.Empty(t, src.quoteCalls)
	})

	t.Run("ManualOverrideWinsOverLiveQuote", func(t *testing.T) {
		rec, err := run.CompareItem(ctx, "Cheap On Discord", price(200))
		require.NoError(t, err)
		assert.Equal(t, 200.0, *rec.DiscordSBPrice)
		assert.Equal(t, CheaperOnMarketplace, rec.Recommendation)
	})

	t.Run("NoQuoteIsUndetermined", func(t *testing.T) {
		rec, err := run.CompareItem(ctx, "Stale Quotes", nil)
		require.NoError(t, err)

		assert.Equal(t, Undetermined, rec.Recommendation)
		assert.Equal(t, NoteNoRecentQuote, rec.Note)
		require.NotNil(t, rec.MarketplaceGoldPrice)
		assert.Equal(t, 700.0, *rec.MarketplaceGoldPrice)
		assert.Nil(t, rec.DiscordSBPrice)
		assert.Nil(t, rec.DiscordGoldPrice)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec, err := run.CompareItem(ctx, "Does Not Exist", nil)
		assert.Nil(t, rec)
		assert.True(t, errors.Is(err, ErrItemNotFound))
		assert.Contains(t, err.Error(), "Does Not Exist")
	})
}

func TestRun_CompareAll(t *testing.T) {
	for _, workers := range []int{1, 3, 16} {
		t.Run("Workers", func(t *testing.T) {
			src := newFixture()
			run := newTestRun(src, Options{Batch: BatchConfig{Workers: workers}})

			records, err := run.CompareAll(context.Background())
			require.NoError(t, err)
			require.Len(t, records, 6)

			// Catalog order
			for i, e := range src.catalog {
				assert.Equal(t, e.ItemID, records[i].ItemID)
			}

			assert.Equal(t, CheaperOnDiscord, records[1].Recommendation)
			assert.Equal(t, CheaperOnMarketplace, records[2].Recommendation)

			notListed := records[3]
			assert.Equal(t, Undetermined, notListed.Recommendation)
			assert.Equal(t, NoteNoListing, notListed.Note)
			assert.Nil(t, notListed.DiscordGoldPrice)
			require.NotNil(t, notListed.MarketplaceGoldPrice)
			assert.Equal(t, 500.0, *notListed.MarketplaceGoldPrice)

			assert.Equal(t, NoteNoRecentQuote, records[4].Note)
			assert.Nil(t, records[4].SBRequired)

			untraded := records[5]
			assert.Equal(t, Undetermined, untraded.Recommendation)
			assert.Equal(t, NoteNoMarketplacePrice, untraded.Note)
			require.NotNil(t, untraded.DiscordSBPrice)
			assert.Nil(t, untraded.DiscordGoldPrice)
			assert.Nil(t, untraded.SBRequired)

			// Unlisted items are never fetched
			assert.NotContains(t, src.quoteCalls, int64(3))
			assert.NotContains(t, src.quoteCalls, int64(114))
		})
	}
}

func TestRun_CompareAll_OrderIndependentOfCompletion(t *testing.T) {
	src := newFixture()
	src.delay = map[int64]time.Duration{1: 50 * time.Millisecond}
	run := newTestRun(src, Options{Batch: BatchConfig{Workers: 4}})

	records, err := run.CompareAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), records[1].ItemID)
	assert.Equal(t, CheaperOnDiscord, records[1].Recommendation)
}

func TestRun_CompareAll_Progress(t *testing.T) {
	var calls []int
	run := newTestRun(newFixture(), Options{
		Batch: BatchConfig{Workers: 2},
		Progress: func(done, total int) {
			assert.Equal(t, 6, total)
			calls = append(calls, done)
		},
	})

	_, err := run.CompareAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, calls)
}

func TestRun_CompareAll_Deadline(t *testing.T) {
	src := newFixture()
	src.delay = map[int64]time.Duration{1: 5 * time.Second}
	run := newTestRun(src, Options{Batch: BatchConfig{Workers: 1, DeadlineSeconds: 1}})

	start := time.Now()
	records, err := run.CompareAll(context.Background())

	assert.Less(t, time.Since(start), 4*time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.Len(t, records, 6)

	assert.Equal(t, Undetermined, records[1].Recommendation)
	assert.Equal(t, NoteDeadlineExceeded, records[1].Note)
	for _, r := range records[2:] {
		assert.Equal(t, Undetermined, r.Recommendation, r.Name)
	}
	assert.Equal(t, NoteDeadlineExceeded, records[2].Note)
}

func TestRun_CompareAll_SummaryCounts(t *testing.T) {
	run := newTestRun(newFixture(), Options{Batch: BatchConfig{Workers: 2}})
	records, err := run.CompareAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Summary{
		Total:                6,
		CheaperOnDiscord:     1,
		CheaperOnMarketplace: 1,
		Undetermined:         4,
	}, Summarize(records))
}
