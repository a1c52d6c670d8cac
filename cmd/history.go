package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"otc-compare/core/database"
	"otc-compare/feature/history"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists recorded batch runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded batch comparison runs",
	Long:  `Lists the most recent runs saved by the report command. Requires DATABASE_ENABLED=true.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", history.DefaultLimit, "Maximum number of runs to list")
	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	runs, err := history.NewRepository(db).ListRuns(context.Background(), historyLimit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSTARTED\tTOTAL\tDISCORD\tMARKETPLACE\tUNDETERMINED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\n",
			r.UUID, r.StartedAt.Format("2006-01-02 15:04:05"),
			r.Total, r.CheaperOnDiscord, r.CheaperOnMarketplace, r.Undetermined)
	}
	return tw.Flush()
}
