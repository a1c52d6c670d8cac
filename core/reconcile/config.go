package reconcile

import "time"

// Config holds the pricing rules used by every comparison of a run.
type Config struct {
	// SBItemID is the Marketplace item whose gold price values one SB.
	SBItemID int64 `mapstructure:"sb_item_id" default:"114" validate:"gt=0"`
	// Tariff is the fraction kept when converting SB into gold on the Marketplace.
	Tariff float64 `mapstructure:"tariff" default:"0.9" validate:"gt=0,lte=1"`
	// EffectiveSurcharge is added to Tariff for the gold delta only, modelling
	// the extra cost of liquidating through Discord.
	EffectiveSurcharge float64 `mapstructure:"effective_surcharge" default:"0.2" validate:"gte=0"`
	// WindowDays is the lookback window for Discord quotes.
	WindowDays int `mapstructure:"window_days" default:"1" validate:"gte=1"`
}

// Window returns the quote lookback window.
func (c Config) Window() time.Duration {
	days := c.WindowDays
	if days <= 0 {
		days = 1
	}
	return time.Duration(days) * 24 * time.Hour
}

// BatchConfig controls the full-catalog run.
type BatchConfig struct {
	// Workers is the number of concurrent per-item fetches.
	Workers int `mapstructure:"workers" default:"4" validate:"gte=1,lte=64"`
	// DeadlineSeconds bounds the whole batch. Zero disables the deadline.
	DeadlineSeconds int `mapstructure:"deadline_seconds" default:"600" validate:"gte=0"`
}

// Deadline returns the overall batch deadline, or zero when disabled.
func (b BatchConfig) Deadline() time.Duration {
	if b.DeadlineSeconds <= 0 {
		return 0
	}
	return time.Duration(b.DeadlineSeconds) * time.Second
}
