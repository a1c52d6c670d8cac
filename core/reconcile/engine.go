package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"otc-compare/core/feed"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Source provides the upstream datasets. *feed.Client implements it.
type Source interface {
	FetchCatalog(ctx context.Context) []feed.CatalogEntry
	FetchListings(ctx context.Context) []feed.ListingReference
	FetchQuotes(ctx context.Context, listingType string, itemID int64) []feed.QuoteEvent
}

// ProgressFunc is called after each item of a batch run completes.
type ProgressFunc func(done, total int)

// Options configures a Run.
type Options struct {
	// Pricing holds the tariff, window and SB reference item.
	Pricing Config
	// Batch controls CompareAll.
	Batch BatchConfig
	// Progress is optional.
	Progress ProgressFunc
	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

// Run is the per-run context: both catalogs and the SB reference price are
// fetched once when the run is created and reused by every comparison.
type Run struct {
	ID        string
	StartedAt time.Time

	source   Source
	catalog  *Catalog
	listings Listings
	sbGold   *float64
	opts     Options
	logger   *zap.Logger
}

// NewRun fetches the Marketplace and Discord catalogs and resolves the SB
// reference price. Fetch failures yield empty catalogs, never an error.
func NewRun(ctx context.Context, source Source, opts Options, logger *zap.Logger) *Run {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	var (
		entries []feed.CatalogEntry
		refs    []feed.ListingReference
		wg      sync.WaitGroup
	)

	// Load both catalogs concurrently
	wg.Add(2)
	go func() {
		defer wg.Done()
		entries = source.FetchCatalog(ctx)
	}()
	go func() {
		defer wg.Done()
		refs = source.FetchListings(ctx)
	}()
	wg.Wait()

	r := &Run{
		ID:        uuid.NewString(),
		StartedAt: opts.Now(),
		source:    source,
		catalog:   NewCatalog(entries),
		listings:  NewListings(refs),
		opts:      opts,
		logger:    logger,
	}
	r.sbGold = r.catalog.GoldPrice(opts.Pricing.SBItemID)

	fields := []zap.Field{
		zap.String("run_id", r.ID),
		zap.Int("catalog_items", len(entries)),
		zap.Int("discord_listings", len(r.listings)),
	}
	if r.sbGold == nil {
		logger.Warn("SB reference price unavailable; comparisons will be undetermined",
			append(fields, zap.Int64("sb_item_id", opts.Pricing.SBItemID))...)
	} else {
		logger.Info("Run initialized", append(fields, zap.Float64("sb_gold_price", *r.sbGold))...)
	}

	return r
}

// Catalog returns the Marketplace index of this run.
func (r *Run) Catalog() *Catalog {
	return r.catalog
}

// Pricing returns the pricing rules of this run.
func (r *Run) Pricing() Config {
	return r.opts.Pricing
}

// SBGoldPrice returns the SB reference price resolved when the run started.
func (r *Run) SBGoldPrice() (float64, error) {
	if r.sbGold == nil {
		return 0, ErrMissingReferencePrice
	}
	return *r.sbGold, nil
}

// CompareItem compares a single item by name. A non-nil manualSBPrice
// replaces the Discord quote and skips the per-item fetch.
// It returns ErrItemNotFound when the name is not in the Marketplace catalog.
func (r *Run) CompareItem(ctx context.Context, name string, manualSBPrice *float64) (*Comparison, error) {
	itemID, err := r.catalog.Resolve(name)
	if err != nil {
		return nil, err
	}
	entry, _ := r.catalog.Entry(itemID)

	var rec Comparison
	if manualSBPrice != nil {
		rec = r.base(entry)
		price := *manualSBPrice
		rec.DiscordSBPrice = &price
		rec.ManualPrice = true
		r.opts.Pricing.Price(&rec, r.sbGold)
	} else {
		rec = r.compareEntry(ctx, entry)
	}

	return &rec, nil
}

// CompareAll compares every catalog item. Records are returned in catalog
// order regardless of completion order. A failure for one item never aborts
// the others. If the batch deadline passes, the remaining items are marked
// undetermined and the deadline error is returned alongside the full record set.
func (r *Run) CompareAll(ctx context.Context) ([]Comparison, error) {
	if d := r.opts.Batch.Deadline(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	entries := r.catalog.Entries()
	results := make([]Comparison, len(entries))

	workers := r.opts.Batch.Workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int)
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.compareEntry(ctx, entries[i])

				mu.Lock()
				done++
				if r.opts.Progress != nil {
					r.opts.Progress(done, len(entries))
				}
				mu.Unlock()
			}
		}()
	}

	for i := range entries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return results, fmt.Errorf("batch deadline of %s exceeded: %w", r.opts.Batch.Deadline(), err)
		}
		return results, err
	}
	return results, nil
}

// compareEntry builds the record for one catalog row, fetching its quotes
// when the item is listed on Discord.
func (r *Run) compareEntry(ctx context.Context, entry feed.CatalogEntry) Comparison {
	rec := r.base(entry)

	listingType, listed := r.listings[entry.ItemID]
	switch {
	case !listed:
		rec.Note = NoteNoListing
	case ctx.Err() != nil:
		rec.ListingType = listingType
		rec.Note = NoteDeadlineExceeded
	default:
		rec.ListingType = listingType
		events := r.source.FetchQuotes(ctx, listingType, entry.ItemID)
		rec.Quotes = SelectQuotes(events, r.opts.Pricing.Window(), r.opts.Now())
		switch {
		case rec.Quotes.Latest != nil:
			price := rec.Quotes.Latest.SBPrice
			rec.DiscordSBPrice = &price
		case ctx.Err() != nil:
			// The fetch was cut short, so an empty window says nothing about trading
			rec.Note = NoteDeadlineExceeded
		}
	}

	r.opts.Pricing.Price(&rec, r.sbGold)
	return rec
}

func (r *Run) base(entry feed.CatalogEntry) Comparison {
	return Comparison{
		ItemID:               entry.ItemID,
		Name:                 entry.Name,
		MarketplaceGoldPrice: r.catalog.GoldPrice(entry.ItemID),
	}
}
