package cmd

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"
)

var trendKeywords []string

// trendsCmd collects one trend bundle and prints it, for inspecting what the
// aggregator currently sees.
var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Collect a trend bundle and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		bundle := newAggregator(cfg).Collect(ctx, trendKeywords)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(bundle)
	},
}

func init() {
	trendsCmd.Flags().StringArrayVar(&trendKeywords, "keyword", nil, "keyword filter for the social source (repeatable)")
	rootCmd.AddCommand(trendsCmd)
}
