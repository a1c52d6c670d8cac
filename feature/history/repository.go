package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"otc-compare/core/reconcile"
	"otc-compare/feature/history/models"

	"gorm.io/gorm"
)

// ErrRunNotFound is returned when no run has the requested id.
var ErrRunNotFound = errors.New("run not found")

// DefaultLimit is the number of runs listed when no limit is given.
const DefaultLimit = 20

// Repository stores batch runs. It is append-only: nothing it holds is ever
// read back into a comparison.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the history tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&models.ComparisonRun{}, &models.ComparisonRow{})
}

// SaveRun persists a run and its records in one transaction.
func (r *Repository) SaveRun(ctx context.Context, runID string, startedAt time.Time, sbGold *float64, records []reconcile.Comparison) error {
	summary := reconcile.Summarize(records)
	run := models.ComparisonRun{
		UUID:                 runID,
		StartedAt:            startedAt,
		SBGoldPrice:          sbGold,
		Total:                summary.Total,
		CheaperOnDiscord:     summary.CheaperOnDiscord,
		CheaperOnMarketplace: summary.CheaperOnMarketplace,
		Undetermined:         summary.Undetermined,
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		if len(records) == 0 {
			return nil
		}

		rows := make([]models.ComparisonRow, len(records))
		for i, rec := range records {
			rows[i] = toRow(run.ID, rec)
		}
		if err := tx.CreateInBatches(&rows, 500).Error; err != nil {
			return fmt.Errorf("failed to save run rows: %w", err)
		}
		return nil
	})
}

// ListRuns returns the most recent runs without their rows.
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]models.ComparisonRun, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var runs []models.ComparisonRun
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// GetRun returns a run with its rows in catalog order.
func (r *Repository) GetRun(ctx context.Context, runID string) (*models.ComparisonRun, error) {
	var run models.ComparisonRun
	err := r.db.WithContext(ctx).
		Preload("Rows", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("uuid = ?", runID).
		First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	return &run, nil
}

func toRow(runID uint, rec reconcile.Comparison) models.ComparisonRow {
	return models.ComparisonRow{
		RunID:                runID,
		ItemID:               rec.ItemID,
		Name:                 rec.Name,
		ListingType:          rec.ListingType,
		MarketplaceGoldPrice: rec.MarketplaceGoldPrice,
		DiscordSBPrice:       rec.DiscordSBPrice,
		DiscordGoldPrice:     rec.DiscordGoldPrice,
		SBRequired:           rec.SBRequired,
		GoldDelta:            rec.GoldDelta,
		SBDelta:              rec.SBDelta,
		Recommendation:       string(rec.Recommendation),
		Note:                 rec.Note,
	}
}
