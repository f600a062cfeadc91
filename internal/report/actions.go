// Package report wires the report and stats commands, both read-only
// consumers of the store.
package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/web-scraper/pkg/db"
	"github.com/dtnitsch/web-scraper/pkg/report"
)

// ReportAction renders the full text analytics report to stdout or --out.
func ReportAction(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	database, err := db.Open(c.String("db"))
	if err != nil {
		logger.Error("failed to open database", "path", c.String("db"), "error", err)
		return cli.Exit("", 2)
	}
	defer database.Close()

	out := os.Stdout
	if path := c.String("out"); path != "" {
		out, err = os.Create(path)
		if err != nil {
			logger.Error("failed to create output file", "path", path, "error", err)
			return cli.Exit("", 2)
		}
		defer out.Close()
	}

	if err := report.New(database).Render(out); err != nil {
		logger.Error("failed to render report", "error", err)
		return cli.Exit("", 2)
	}
	return nil
}

// StatsAction prints the aggregate record statistics as indented JSON.
func StatsAction(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	database, err := db.Open(c.String("db"))
	if err != nil {
		logger.Error("failed to open database", "path", c.String("db"), "error", err)
		return cli.Exit("", 2)
	}
	defer database.Close()

	agg, err := database.Aggregate()
	if err != nil {
		logger.Error("failed to aggregate records", "error", err)
		return cli.Exit("", 2)
	}

	data, err := json.MarshalIndent(agg, "", "  ")
	if err != nil {
		logger.Error("failed to marshal aggregate", "error", err)
		return cli.Exit("", 2)
	}
	fmt.Println(string(data))
	return nil
}
