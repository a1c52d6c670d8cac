package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client retrieves the Marketplace and Discord feeds.
// Every fetch degrades to an empty result on failure; errors are logged, never returned.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	cfg     Config
	logger  *zap.Logger
}

// NewClient creates a feed client based on the configuration.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	client := resty.New()
	client.SetTimeout(time.Duration(timeout) * time.Second)
	client.SetRetryCount(cfg.RetryCount)
	client.SetRetryWaitTime(250 * time.Millisecond)
	client.SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{
		http:    client,
		limiter: rate.NewLimiter(limit, burst),
		cfg:     cfg,
		logger:  logger,
	}
}

// FetchCatalog retrieves the full Marketplace catalog.
func (c *Client) FetchCatalog(ctx context.Context) []CatalogEntry {
	return MapCatalog(c.Fetch(ctx, c.cfg.MarketplaceURL))
}

// FetchListings retrieves the Discord listing references.
func (c *Client) FetchListings(ctx context.Context) []ListingReference {
	return MapListings(c.Fetch(ctx, c.cfg.DiscordURL))
}

// FetchQuotes retrieves the OTC listing history of one item.
func (c *Client) FetchQuotes(ctx context.Context, listingType string, itemID int64) []QuoteEvent {
	return MapQuotes(c.Fetch(ctx, c.QuotesURL(listingType, itemID)))
}

// QuotesURL builds the per-item listing endpoint.
func (c *Client) QuotesURL(listingType string, itemID int64) string {
	return strings.TrimRight(c.cfg.DiscordURL, "/") + "/" + url.PathEscape(listingType) + "/" + strconv.FormatInt(itemID, 10)
}

// Fetch retrieves a JSON document and flattens it into rows.
// On any failure it logs a warning and returns an empty slice.
func (c *Client) Fetch(ctx context.Context, target string) []Row {
	rows, err := c.fetch(ctx, target)
	if err != nil {
		c.logger.Warn("Feed fetch failed", zap.String("url", target), zap.Error(err))
		return []Row{}
	}
	c.logger.Debug("Feed fetched", zap.String("url", target), zap.Int("rows", len(rows)))
	return rows
}

func (c *Client) fetch(ctx context.Context, target string) ([]Row, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := c.http.R().SetContext(ctx).Get(target)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("malformed body: %w", err)
	}

	return Flatten(doc), nil
}
