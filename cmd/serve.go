package cmd

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trendpilot/internal/redisclient"
	"trendpilot/internal/storage"
	"trendpilot/worker"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the schedule-matcher worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		// Redis client
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		interval, err := time.ParseDuration(cfg.Autopilot.TickInterval)
		if err != nil {
			return err
		}

		matcher := &worker.ScheduleMatcher{
			Store:    store,
			Runner:   newRunner(cfg, store),
			Interval: interval,
			Location: time.FixedZone("local", cfg.Autopilot.TimezoneOffset*3600),
		}

		slog.Info("starting schedule matcher",
			"interval", interval.String(),
			"tz_offset", cfg.Autopilot.TimezoneOffset,
			"platforms", cfg.Autopilot.Platforms)

		mgr := worker.NewManager(matcher)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			s := <-sigc
			log.Printf("received signal: %s, shutting down", s)
			cancel()
		}()

		if err := mgr.Start(ctx); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
