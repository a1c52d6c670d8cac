package report

import (
	"strconv"

	"otc-compare/core/reconcile"
)

// Row highlight colours, without the leading '#'.
const (
	ColorDiscord     = "99FF99"
	ColorMarketplace = "FF9999"
)

// Headers are the report columns in order.
var Headers = []string{
	"Item ID",
	"Name",
	"Marketplace Gold Price",
	"Discord SB Price",
	"Discord Gold Price",
	"SB Required (Marketplace)",
	"Difference in Marketplace - Discord (Gold)",
	"Difference in Marketplace - Discord (SB)",
	"Better to buy from Discord?",
	"Latest Quote",
	"Note",
}

// Verdict renders the recommendation column.
func Verdict(r reconcile.Recommendation) string {
	switch r {
	case reconcile.CheaperOnDiscord:
		return "Yes"
	case reconcile.CheaperOnMarketplace:
		return "No"
	default:
		return ""
	}
}

// RowColor returns the highlight colour of a record, or "" for none.
func RowColor(r reconcile.Recommendation) string {
	switch r {
	case reconcile.CheaperOnDiscord:
		return ColorDiscord
	case reconcile.CheaperOnMarketplace:
		return ColorMarketplace
	default:
		return ""
	}
}

// cells returns the typed cell values of one record; nil members stay nil.
func cells(rec reconcile.Comparison) []any {
	latest := ""
	if rec.Quotes.Latest != nil {
		latest = rec.Quotes.Latest.At
	}
	return []any{
		rec.ItemID,
		rec.Name,
		value(rec.MarketplaceGoldPrice),
		value(rec.DiscordSBPrice),
		value(rec.DiscordGoldPrice),
		value(rec.SBRequired),
		value(rec.GoldDelta),
		value(rec.SBDelta),
		Verdict(rec.Recommendation),
		latest,
		rec.Note,
	}
}

func value(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// FormatNumber renders a nullable number for text output, blank when nil.
func FormatNumber(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
