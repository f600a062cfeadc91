// Package export wires the export command: it reads stored rows and writes
// them to a CSV or JSON file.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/web-scraper/pkg/db"
	"github.com/dtnitsch/web-scraper/pkg/export"
)

func Action(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	database, err := db.Open(c.String("db"))
	if err != nil {
		logger.Error("failed to open database", "path", c.String("db"), "error", err)
		return cli.Exit("", 2)
	}
	defer database.Close()

	records, err := database.ListRecords()
	if err != nil {
		logger.Error("failed to load records", "error", err)
		return cli.Exit("", 2)
	}

	format := strings.ToLower(c.String("format"))
	outPath := c.String("out")
	if outPath == "" {
		outPath = "scraped_data." + format
	}

	out, err := os.Create(outPath)
	if err != nil {
		logger.Error("failed to create output file", "path", outPath, "error", err)
		return cli.Exit("", 2)
	}
	defer out.Close()

	switch format {
	case "csv":
		err = export.WriteCSV(out, records)
	case "json":
		err = export.WriteJSON(out, records)
	default:
		return cli.Exit(fmt.Sprintf("Error: unknown format %q (want csv or json)", format), 1)
	}
	if err != nil {
		logger.Error("export failed", "format", format, "error", err)
		return cli.Exit("", 2)
	}

	logger.Info("export complete", "format", format, "records", len(records), "path", outPath)
	fmt.Printf("Exported %d records to %s\n", len(records), outPath)
	return nil
}
