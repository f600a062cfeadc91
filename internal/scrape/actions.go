// Package scrape wires the scrape command: it builds the runtime config from
// flags and an optional YAML file, opens the store, and drives the batch
// runner.
package scrape

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/web-scraper/models"
	"github.com/dtnitsch/web-scraper/pkg/db"
	"github.com/dtnitsch/web-scraper/pkg/fetcher"
	"github.com/dtnitsch/web-scraper/pkg/scraper"
)

func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config := models.DefaultConfig()
	if c.IsSet("config") {
		loaded, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error: %s", err), 2)
		}
		config = *loaded
	}

	// Flags override file values.
	if c.IsSet("urls") {
		config.URLs = splitURLs(c.String("urls"))
	}
	if c.IsSet("delay") {
		config.Delay = c.Float64("delay")
	}
	if c.IsSet("timeout") {
		config.Timeout = c.Float64("timeout")
	}
	if c.IsSet("user-agent") {
		config.UserAgent = c.String("user-agent")
	}
	if c.IsSet("db") {
		config.DBPath = c.String("db")
	}

	if len(config.URLs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No URLs provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  web-scraper scrape --urls "https://example.com,https://example.org"`)
		fmt.Fprintln(os.Stderr, `  web-scraper scrape --config config.yaml`)
		return cli.Exit("", 1)
	}

	database, err := db.Open(config.DBPath)
	if err != nil {
		logger.Error("failed to open database", "path", config.DBPath, "error", err)
		return cli.Exit("", 2)
	}
	defer database.Close()

	f := fetcher.New(secondsToDuration(config.Timeout), config.UserAgent)
	s := scraper.New(logger, f, database, secondsToDuration(config.Delay))

	records, stats, err := s.Run(c.Context, config.URLs)
	if err != nil {
		logger.Error("batch aborted", "error", err)
		return cli.Exit("", 2)
	}

	for _, rec := range records {
		fmt.Printf("%-7s  %s\n", rec.Status, rec.URL)
	}
	fmt.Printf("\nSession %s: %d/%d successful, %d failed in %.2fs\n",
		stats.SessionID, stats.Successful, stats.TotalPages, stats.Failed, stats.Duration)

	if stats.Failed > 0 && stats.Failed == stats.TotalPages {
		return cli.Exit("", 1)
	}
	return nil
}

func splitURLs(raw string) []string {
	var urls []string
	for _, u := range strings.Split(raw, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
