package reconcile

import (
	"fmt"

	"otc-compare/core/feed"
)

// Catalog indexes the Marketplace entries of one run.
// When ids or names repeat, the first row wins.
type Catalog struct {
	entries []feed.CatalogEntry
	byID    map[int64]int
	byName  map[string]int64
}

// NewCatalog builds the id and name indices.
func NewCatalog(entries []feed.CatalogEntry) *Catalog {
	c := &Catalog{
		entries: entries,
		byID:    make(map[int64]int, len(entries)),
		byName:  make(map[string]int64, len(entries)),
	}
	for i, e := range entries {
		if _, exists := c.byID[e.ItemID]; !exists {
			c.byID[e.ItemID] = i
		}
		if e.Name == "" {
			continue
		}
		if _, exists := c.byName[e.Name]; !exists {
			c.byName[e.Name] = e.ItemID
		}
	}
	return c
}

// Len returns the number of catalog rows.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the rows in feed order.
func (c *Catalog) Entries() []feed.CatalogEntry {
	return c.entries
}

// Resolve returns the item id for an exact name match.
func (c *Catalog) Resolve(name string) (int64, error) {
	id, ok := c.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	return id, nil
}

// Entry returns the row for an item id.
func (c *Catalog) Entry(itemID int64) (feed.CatalogEntry, bool) {
	i, ok := c.byID[itemID]
	if !ok {
		return feed.CatalogEntry{}, false
	}
	return c.entries[i], true
}

// GoldPrice returns the current gold price of an item.
// It is nil when the item is absent or has no recent market data.
func (c *Catalog) GoldPrice(itemID int64) *float64 {
	e, ok := c.Entry(itemID)
	if !ok || e.GoldPrice == nil {
		return nil
	}
	price := *e.GoldPrice
	return &price
}

// Listings indexes Discord listing types by item id. First row wins.
type Listings map[int64]string

// NewListings builds the listing-type index.
func NewListings(refs []feed.ListingReference) Listings {
	l := make(Listings, len(refs))
	for _, r := range refs {
		if _, exists := l[r.ItemID]; !exists {
			l[r.ItemID] = r.ListingType
		}
	}
	return l
}
