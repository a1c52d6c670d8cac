package models

import "time"

// ComparisonRun is one persisted batch comparison.
type ComparisonRun struct {
	ID                   uint            `gorm:"primaryKey;column:id" json:"id"`
	UUID                 string          `gorm:"column:uuid;type:varchar(36);uniqueIndex" json:"run_id"`
	StartedAt            time.Time       `gorm:"column:started_at" json:"started_at"`
	SBGoldPrice          *float64        `gorm:"column:sb_gold_price" json:"sb_gold_price"`
	Total                int             `gorm:"column:total" json:"total"`
	CheaperOnDiscord     int             `gorm:"column:cheaper_on_discord" json:"cheaper_on_discord"`
	CheaperOnMarketplace int             `gorm:"column:cheaper_on_marketplace" json:"cheaper_on_marketplace"`
	Undetermined         int             `gorm:"column:undetermined" json:"undetermined"`
	Rows                 []ComparisonRow `gorm:"foreignKey:RunID" json:"rows,omitempty"`
}

func (ComparisonRun) TableName() string {
	return "comparison_runs"
}

// ComparisonRow is one item of a persisted run. Nullable columns stay NULL
// when the value could not be derived.
type ComparisonRow struct {
	ID                   uint     `gorm:"primaryKey;column:id" json:"-"`
	RunID                uint     `gorm:"column:run_id;index" json:"-"`
	ItemID               int64    `gorm:"column:item_id" json:"item_id"`
	Name                 string   `gorm:"column:name;type:varchar(255)" json:"name"`
	ListingType          string   `gorm:"column:listing_type;type:varchar(64)" json:"listing_type,omitempty"`
	MarketplaceGoldPrice *float64 `gorm:"column:marketplace_gold_price" json:"marketplace_gold_price"`
	DiscordSBPrice       *float64 `gorm:"column:discord_sb_price" json:"discord_sb_price"`
	DiscordGoldPrice     *float64 `gorm:"column:discord_gold_price" json:"discord_gold_price"`
	SBRequired           *float64 `gorm:"column:sb_required" json:"sb_required_via_marketplace"`
	GoldDelta            *float64 `gorm:"column:gold_delta" json:"gold_delta"`
	SBDelta              *float64 `gorm:"column:sb_delta" json:"sb_equivalent_delta"`
	Recommendation       string   `gorm:"column:recommendation;type:varchar(32)" json:"recommendation"`
	Note                 string   `gorm:"column:note;type:varchar(255)" json:"note,omitempty"`
}

func (ComparisonRow) TableName() string {
	return "comparison_rows"
}
