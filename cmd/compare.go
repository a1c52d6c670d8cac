package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"otc-compare/core/reconcile"
	"otc-compare/core/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const noDiscordPriceMessage = "No discord price was found for this item, consider manually inputting the latest SB price"

var (
	// Flags for the compare command
	compareSBPrice    float64
	compareWindowDays int
)

// compareCmd compares a single item.
var compareCmd = &cobra.Command{
	Use:   "compare [item name...]",
	Short: "Compare a single item between the Marketplace and Discord",
	Long: `Looks up an item by its exact Marketplace name and compares its gold price
with the latest Discord SB quote inside the lookback window.

Examples:
  # Use the latest Discord quote
  compare Gilded Charm

  # Ignore Discord and use a known SB price
  compare Gilded Charm --sb-price 7.5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().Float64Var(&compareSBPrice, "sb-price", 0, "Manual SB price replacing the Discord quote")
	compareCmd.Flags().IntVar(&compareWindowDays, "window-days", 0, "Override the quote lookback window in days")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	opts := runOptions(cfg)
	if compareWindowDays > 0 {
		opts.Pricing.WindowDays = compareWindowDays
	}

	var manual *float64
	if cmd.Flags().Changed("sb-price") {
		if compareSBPrice <= 0 || math.IsNaN(compareSBPrice) || math.IsInf(compareSBPrice, 0) {
			return fmt.Errorf("--sb-price must be a positive number")
		}
		manual = &compareSBPrice
	}

	name := strings.Join(args, " ")
	run := reconcile.NewRun(ctx, newSource(cfg, l), opts, l)

	rec, err := run.CompareItem(ctx, name, manual)
	if err != nil {
		if errors.Is(err, reconcile.ErrItemNotFound) {
			l.Warn("No such item", zap.String("item", name))
		}
		return err
	}

	var sbGold *float64
	if v, err := run.SBGoldPrice(); err == nil {
		sbGold = &v
	}

	printComparison(cmd.OutOrStdout(), rec, sbGold, opts.Pricing)
	return nil
}

// printComparison writes the two ratio comparisons of one item.
func printComparison(w io.Writer, rec *reconcile.Comparison, sbGold *float64, pricing reconcile.Config) {
	fmt.Fprintf(w, "\n--- %s (#%d) ---\n", rec.Name, rec.ItemID)

	switch {
	case rec.DiscordSBPrice == nil:
		fmt.Fprintln(w, noDiscordPriceMessage)
		fmt.Fprintf(w, "marketplace_gold_price: %s\n", orUnavailable(rec.MarketplaceGoldPrice))
	case sbGold == nil || rec.MarketplaceGoldPrice == nil:
		fmt.Fprintf(w, "Comparison unavailable: %s\n", rec.Note)
		fmt.Fprintf(w, "marketplace_gold_price: %s\n", orUnavailable(rec.MarketplaceGoldPrice))
		fmt.Fprintf(w, "discord_sb_price: %s\n", orUnavailable(rec.DiscordSBPrice))
	default:
		sb := *rec.DiscordSBPrice
		fmt.Fprintf(w, "Amount of SB to sell in Marketplace (factor * %s tariffs) to buy item with gold from Marketplace vs just trading SB for item (Discord):\n",
			report.FormatNumber(&pricing.Tariff))
		fmt.Fprintf(w, "Marketplace: %s Vs Discord price: %s\n",
			report.FormatNumber(rec.SBRequired), report.FormatNumber(&sb))

		discordGold := math.Trunc(*rec.DiscordGoldPrice)
		roundedSB := math.Round(sb*100) / 100
		fmt.Fprintln(w, "Amount of Gold to buy in Marketplace vs Gold equivalent of buying in Discord for item:")
		fmt.Fprintf(w, "Marketplace: %s Vs Discord price: %s (%s*%sSB)\n",
			report.FormatNumber(rec.MarketplaceGoldPrice), report.FormatNumber(&discordGold),
			report.FormatNumber(sbGold), report.FormatNumber(&roundedSB))
		fmt.Fprintf(w, "Better to buy from Discord? %s\n", report.Verdict(rec.Recommendation))
	}

	if rec.ManualPrice {
		fmt.Fprintln(w, "(manual SB price)")
	}
	if q := rec.Quotes.Latest; q != nil {
		fmt.Fprintf(w, "Latest quote: %s SB at %s\n", report.FormatNumber(&q.SBPrice), q.At)
	}
	if q := rec.Quotes.Lowest; q != nil {
		fmt.Fprintf(w, "Lowest quote: %s SB at %s\n", report.FormatNumber(&q.SBPrice), q.At)
	}
}

func orUnavailable(f *float64) string {
	if f == nil {
		return "unavailable"
	}
	return report.FormatNumber(f)
}
