package main

import (
	"fmt"
	"os"

	wikirevisions "github.com/VLeins/oii-fsds-wikipedia"
	"github.com/VLeins/oii-fsds-wikipedia/config"
	"github.com/VLeins/oii-fsds-wikipedia/fetcher"
	"github.com/VLeins/oii-fsds-wikipedia/store"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var version = "unknown"

const defaultRevisionLimit = 10

func main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print version",
	}

	app := &cli.App{
		Name:      "download-wiki-revisions",
		Version:   version,
		Usage:     "Download the revision history of a Wikipedia page into a local folder tree",
		ArgsUsage: "<page title>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Value:   false,
				Usage:   "verbose logging",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Value:   defaultRevisionLimit,
				Usage:   "number of revisions to download (capped at 1000 by the export endpoint)",
			},
			&cli.BoolFlag{
				Name:  "count-folders",
				Value: false,
				Usage: "include directories in the final revision count",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "set the storage root to `DIR`. 'data' by default",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "index endpoint of the wiki to export from. English Wikipedia by default",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
		},
		Action: mainAction,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()

	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}

		cfg = loaded
	}

	// Flags override the config file.
	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
	}

	if c.IsSet("base-url") {
		cfg.BaseURL = c.String("base-url")
	}

	return cfg, nil
}

func mainAction(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowAppHelpAndExit(c, 1)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Could not load configuration: %s", err), 1)
	}

	if c.Bool("verbose") {
		log.SetLevel(log.InfoLevel)
	} else {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Invalid log level: %s", err), 1)
		}

		log.SetLevel(level)
	}

	page := c.Args().First()
	limit := c.Int("limit")

	bar := progressbar.NewOptions(limit,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("revisions"),
		progressbar.OptionShowCount(),
	)

	pipeline := wikirevisions.Pipeline{
		Fetcher: fetcher.NewMediaWikiFetcher(fetcher.Options{BaseURL: cfg.BaseURL}),
		Store:   store.New(cfg.DataDir),
		Progress: func(processed, total int) {
			_ = bar.Set(processed)
		},
	}

	count, err := pipeline.Run(page, limit, c.Bool("count-folders"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Downloading %q failed: %s", page, err), 1)
	}

	_ = bar.Finish()

	fmt.Printf("\nDone! %d revisions downloaded to %s\n", count, cfg.DataDir)

	return nil
}
