package feed

// Config holds configuration for the upstream price feeds.
type Config struct {
	// MarketplaceURL is the full-catalog endpoint of the Marketplace.
	MarketplaceURL string `mapstructure:"marketplace_url" default:"https://api-dev.markethunt.win/items" validate:"required,url"`
	// DiscordURL is the Discord OTC catalog endpoint. Per-item listing
	// history lives under {DiscordURL}/{listing_type}/{item_id}.
	DiscordURL string `mapstructure:"discord_url" default:"https://api.markethunt.win/otc/listings" validate:"required,url"`
	// TimeoutSeconds bounds each individual request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10" validate:"gte=1"`
	// RetryCount is the number of retries on transport errors.
	RetryCount int `mapstructure:"retry_count" default:"2" validate:"gte=0,lte=10"`
	// RateLimit is the sustained request rate in requests per second.
	RateLimit float64 `mapstructure:"rate_limit" default:"5" validate:"gt=0"`
	// Burst is the number of requests allowed above RateLimit at once.
	Burst int `mapstructure:"burst" default:"5" validate:"gte=1"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"otc-compare/1.0"`
}
