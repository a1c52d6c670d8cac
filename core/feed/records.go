package feed

// CatalogEntry is one Marketplace row.
type CatalogEntry struct {
	ItemID int64  `json:"item_id"`
	Name   string `json:"name"`
	// GoldPrice is nil when the Marketplace has no recent data for the item.
	GoldPrice *float64 `json:"gold_price"`
}

// ListingReference maps an item to the listing type used to build its
// per-item Discord endpoint.
type ListingReference struct {
	ItemID      int64  `json:"item_id"`
	ListingType string `json:"listing_type"`
}

// QuoteEvent is one Discord OTC observation.
type QuoteEvent struct {
	SBPrice float64 `json:"sb_price"`
	// Timestamp is in milliseconds since the epoch.
	Timestamp int64 `json:"timestamp"`
}

// Consulted columns of the flattened upstream rows.
const (
	ColCatalogItemID = "item_info.item_id"
	ColCatalogName   = "item_info.name"
	ColCatalogPrice  = "latest_market_data.price"
	ColListingItemID = "item.item_id"
	ColListingType   = "listing_type"
	ColQuoteSBPrice  = "sb_price"
	ColQuoteTime     = "timestamp"
)
