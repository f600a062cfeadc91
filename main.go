package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	exportcmd "github.com/dtnitsch/web-scraper/internal/export"
	reportcmd "github.com/dtnitsch/web-scraper/internal/report"
	scrapecmd "github.com/dtnitsch/web-scraper/internal/scrape"
	"github.com/dtnitsch/web-scraper/pkg/db"
)

func main() {
	dbFlag := &cli.StringFlag{
		Name:  "db",
		Usage: "path to the SQLite database",
		Value: db.DefaultDBName,
	}

	app := &cli.App{
		Name:  "web-scraper",
		Usage: "scrape pages, persist them to SQLite, and analyze the results",
		Commands: []*cli.Command{
			{
				Name:  "scrape",
				Usage: "fetch a list of URLs sequentially and persist one record per page",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "urls",
						Usage: "comma-separated list of URLs to scrape",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file with urls, delay, timeout, user_agent, db_path",
					},
					&cli.Float64Flag{
						Name:  "delay",
						Usage: "seconds to wait between pages",
						Value: 1.0,
					},
					&cli.Float64Flag{
						Name:  "timeout",
						Usage: "per-request timeout in seconds",
						Value: 10.0,
					},
					&cli.StringFlag{
						Name:  "user-agent",
						Usage: "client identity header sent with every request",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
					dbFlag,
				},
				Action: scrapecmd.Action,
			},
			{
				Name:  "export",
				Usage: "export stored records to CSV or JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format: csv or json",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "output file path (default scraped_data.<format>)",
					},
					dbFlag,
				},
				Action: exportcmd.Action,
			},
			{
				Name:  "report",
				Usage: "render a text analytics report over the stored records",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "write the report to a file instead of stdout",
					},
					dbFlag,
				},
				Action: reportcmd.ReportAction,
			},
			{
				Name:   "stats",
				Usage:  "print aggregate scrape statistics as JSON",
				Flags:  []cli.Flag{dbFlag},
				Action: reportcmd.StatsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
