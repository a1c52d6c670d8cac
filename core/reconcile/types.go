package reconcile

// Recommendation classifies which source is cheaper for an item.
type Recommendation string

const (
	// CheaperOnDiscord means trading SB for the item beats buying it with gold.
	CheaperOnDiscord Recommendation = "cheaper-on-discord"
	// CheaperOnMarketplace means buying with gold is at least as cheap.
	CheaperOnMarketplace Recommendation = "cheaper-on-marketplace"
	// Undetermined means an input was missing.
	Undetermined Recommendation = "undetermined"
)

// Notes explaining an Undetermined recommendation.
const (
	NoteNoMarketplacePrice = "no marketplace gold price"
	NoteNoListing          = "item not listed on discord"
	NoteNoRecentQuote      = "no discord quote within window"
	NoteNoReferencePrice   = "sb reference price unavailable"
	NoteDeadlineExceeded   = "batch deadline exceeded"
)

// Quote is one selected Discord quote.
type Quote struct {
	// SBPrice is denominated in SB.
	SBPrice float64 `json:"sb_price"`
	// Timestamp is the raw millisecond value from the feed.
	Timestamp int64 `json:"timestamp"`
	// At is Timestamp rendered for display.
	At string `json:"at"`
}

// QuoteWindow holds the quotes selected from a lookback window.
// Both members are nil when nothing was traded within the window.
type QuoteWindow struct {
	Latest *Quote `json:"latest"`
	Lowest *Quote `json:"lowest"`
}

// Empty reports whether no quote fell within the window.
func (w QuoteWindow) Empty() bool {
	return w.Latest == nil
}

// Comparison is the reconciliation output for a single item.
// Numeric members are nil when they could not be derived; they are never zero-filled.
type Comparison struct {
	// ItemID is the Marketplace item identifier.
	ItemID int64 `json:"item_id"`

	// Name is the Marketplace display name.
	Name string `json:"name"`

	// ListingType is the Discord listing type, empty when the item is not listed.
	ListingType string `json:"listing_type,omitempty"`

	// MarketplaceGoldPrice is the current Marketplace price in gold.
	MarketplaceGoldPrice *float64 `json:"marketplace_gold_price"`

	// DiscordSBPrice is the latest Discord quote in SB, or the manual override.
	DiscordSBPrice *float64 `json:"discord_sb_price"`

	// DiscordGoldPrice is DiscordSBPrice valued at the SB reference price.
	DiscordGoldPrice *float64 `json:"discord_gold_price"`

	// SBRequired is the SB one would have to sell, after tariff, to buy the item with gold.
	SBRequired *float64 `json:"sb_required_via_marketplace"`

	// GoldDelta is the Marketplace price minus the effective Discord gold cost.
	GoldDelta *float64 `json:"gold_delta"`

	// SBDelta is SBRequired minus DiscordSBPrice. Positive means Discord is cheaper.
	SBDelta *float64 `json:"sb_equivalent_delta"`

	// Recommendation is the classification of this record.
	Recommendation Recommendation `json:"recommendation"`

	// Quotes holds the quotes selected from the window, if fetched.
	Quotes QuoteWindow `json:"quotes"`

	// ManualPrice is true when DiscordSBPrice came from a caller override.
	ManualPrice bool `json:"manual_price"`

	// Note explains an Undetermined recommendation.
	Note string `json:"note,omitempty"`
}

// Resolved reports whether both sides were known and a recommendation computed.
func (c *Comparison) Resolved() bool {
	return c.Recommendation != Undetermined && c.Recommendation != ""
}

// Summary provides aggregate counts over a set of comparisons.
type Summary struct {
	Total                int `json:"total"`
	CheaperOnDiscord     int `json:"cheaper_on_discord"`
	CheaperOnMarketplace int `json:"cheaper_on_marketplace"`
	Undetermined         int `json:"undetermined"`
}

// Summarize counts records per recommendation.
func Summarize(records []Comparison) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		switch r.Recommendation {
		case CheaperOnDiscord:
			s.CheaperOnDiscord++
		case CheaperOnMarketplace:
			s.CheaperOnMarketplace++
		default:
			s.Undetermined++
		}
	}
	return s
}
