package reconcile

import (
	"math"

	"otc-compare/core/utils"
)

// Price derives the numeric members and the recommendation of rec from its
// MarketplaceGoldPrice and DiscordSBPrice, valued at sbGold.
//
// Derived members are set only when all three inputs are known. Otherwise the
// record is Undetermined, every derived member stays nil and Note names the
// first missing input.
func (c Config) Price(rec *Comparison, sbGold *float64) {
	rec.DiscordGoldPrice = nil
	rec.SBRequired = nil
	rec.GoldDelta = nil
	rec.SBDelta = nil
	rec.Recommendation = Undetermined

	switch {
	case sbGold == nil || *sbGold <= 0:
		rec.Note = NoteNoReferencePrice
		return
	case rec.MarketplaceGoldPrice == nil:
		rec.Note = NoteNoMarketplacePrice
		return
	case rec.DiscordSBPrice == nil:
		if rec.Note == "" {
			rec.Note = NoteNoRecentQuote
		}
		return
	}

	ref := *sbGold
	market := *rec.MarketplaceGoldPrice
	sb := *rec.DiscordSBPrice

	required := utils.Round2(market / (ref * c.Tariff))
	delta := required - sb

	rec.DiscordGoldPrice = utils.Float(sb * ref)
	rec.SBRequired = &required
	// Rounded to cents before truncating, so a fractional part of .995 or more
	// carries into the next unit instead of being dropped as plain truncation would
	rec.GoldDelta = utils.Float(math.Trunc(utils.Round2(market - sb*ref*(c.Tariff+c.EffectiveSurcharge))))
	rec.SBDelta = &delta
	rec.Note = ""

	if delta > 0 {
		rec.Recommendation = CheaperOnDiscord
	} else {
		rec.Recommendation = CheaperOnMarketplace
	}
}
