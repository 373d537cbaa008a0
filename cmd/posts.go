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

var (
	postsUserID string
	postsLimit  int
)

// postsCmd lists a user's persisted posts for inspecting run outcomes.
var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List a user's persisted posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if postsUserID == "" {
			return errors.New("--user is required")
		}
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		posts, err := store.ListPosts(ctx, postsUserID, postsLimit)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(posts)
	},
}

func init() {
	postsCmd.Flags().StringVar(&postsUserID, "user", "", "user ID to list posts for")
	postsCmd.Flags().IntVar(&postsLimit, "limit", 20, "maximum number of posts to print")
	rootCmd.AddCommand(postsCmd)
}
