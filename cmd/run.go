package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"trendpilot/internal/redisclient"
	"trendpilot/internal/storage"

	"github.com/spf13/cobra"
)

var runUserID string

// runCmd triggers one autopilot run for a user and prints the per-pair
// results. Pair failures are reported inline, not as a command error.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run autopilot once for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if runUserID == "" {
			return errors.New("--user is required")
		}
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		results, err := newRunner(cfg, store).Run(ctx, runUserID)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	},
}

func init() {
	runCmd.Flags().StringVar(&runUserID, "user", "", "user ID to run autopilot for")
	rootCmd.AddCommand(runCmd)
}
