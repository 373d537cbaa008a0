package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"trendpilot/internal/model"
	"trendpilot/internal/redisclient"
	"trendpilot/internal/storage"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// seedFixture mirrors the YAML layout of a seed file.
type seedFixture struct {
	Users []struct {
		ID               string `yaml:"id"`
		Email            string `yaml:"email"`
		AutopilotEnabled bool   `yaml:"autopilot_enabled"`
		Genres           []struct {
			Name     string   `yaml:"name"`
			Keywords []string `yaml:"keywords"`
		} `yaml:"genres"`
		SNSAccounts []struct {
			Platform          string `yaml:"platform"`
			AccessToken       string `yaml:"access_token"`
			AccessTokenSecret string `yaml:"access_token_secret"`
		} `yaml:"sns_accounts"`
		Schedules []struct {
			Time      string `yaml:"time"`
			Frequency string `yaml:"frequency"`
		} `yaml:"schedules"`
	} `yaml:"users"`
}

// seedCmd loads users, genres, SNS accounts, and schedules from a YAML
// fixture into the store.
var seedCmd = &cobra.Command{
	Use:   "seed <file.yaml>",
	Short: "Load users, genres, accounts, and schedules from a YAML fixture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		b, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var fx seedFixture
		if err := yaml.Unmarshal(b, &fx); err != nil {
			return fmt.Errorf("parse seed file: %w", err)
		}

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		for _, u := range fx.Users {
			if err := store.SaveUser(ctx, model.User{
				ID:               u.ID,
				Email:            u.Email,
				AutopilotEnabled: u.AutopilotEnabled,
			}); err != nil {
				return err
			}
			for _, g := range u.Genres {
				if err := store.SaveGenre(ctx, u.ID, model.Genre{Name: g.Name, Keywords: g.Keywords}); err != nil {
					return err
				}
			}
			for _, a := range u.SNSAccounts {
				if err := store.SaveSNSAccount(ctx, model.SNSAccount{
					UserID:            u.ID,
					Platform:          a.Platform,
					AccessToken:       a.AccessToken,
					AccessTokenSecret: a.AccessTokenSecret,
				}); err != nil {
					return err
				}
			}
			for _, s := range u.Schedules {
				if err := store.SaveSchedule(ctx, model.Schedule{
					UserID:    u.ID,
					Time:      s.Time,
					Frequency: s.Frequency,
				}); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded user %s (%d genres, %d accounts, %d schedules)\n",
				u.ID, len(u.Genres), len(u.SNSAccounts), len(u.Schedules))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
