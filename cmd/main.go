package main

import (
	"flag"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	cfgPkg "github.com/xhad/banks/pkg/config"
	"github.com/xhad/banks/pkg/pipeline"
)

func main() {
	config, err := parseFlags()
	if err != nil {
		log.Fatal(err)
	}

	if errs := config.Validate(); len(errs) > 0 {
		for _, e := range errs {
			color.Red("config: %v", e)
		}
		os.Exit(1)
	}

	if err := run(config); err != nil {
		log.Fatal(err)
	}
}

func parseFlags() (*cfgPkg.Config, error) {
	var configPath string
	var sourceURL, ratesPath, csvPath, logPath, driver, dsn, tableName string

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&sourceURL, "url", "", "Document URL to extract from")
	flag.StringVar(&ratesPath, "rates", "", "Path to the exchange rate CSV")
	flag.StringVar(&csvPath, "csv", "", "Output CSV path")
	flag.StringVar(&logPath, "log", "", "Milestone log file path")
	flag.StringVar(&driver, "driver", "", "Store driver (sqlite or postgres)")
	flag.StringVar(&dsn, "db", "", "Store DSN (file path for sqlite)")
	flag.StringVar(&tableName, "table", "", "Store table name")
	flag.Parse()

	config, err := cfgPkg.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	// Command line flags override the config file
	if sourceURL != "" {
		config.Source.URL = sourceURL
	}
	if ratesPath != "" {
		config.Rates.Path = ratesPath
	}
	if csvPath != "" {
		config.Output.CSVPath = csvPath
	}
	if logPath != "" {
		config.Output.LogPath = logPath
	}
	if driver != "" {
		config.Database.Driver = driver
	}
	if dsn != "" {
		config.Database.DSN = dsn
	}
	if tableName != "" {
		config.Database.TableName = tableName
	}

	return config, nil
}

func getSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run(config *cfgPkg.Config) error {
	color.Blue("\nStarting largest-banks pipeline for %s\n", config.Source.URL)

	var spinner *progressbar.ProgressBar

	p := pipeline.New(config)
	p.SetEvents(pipeline.Events{
		StageStart: func(stage string) {
			if stage == "extract" {
				spinner = getSpinner("Fetching document...")
			}
		},
		StageDone: func(stage string) {
			switch stage {
			case "extract":
				if spinner != nil {
					_ = spinner.Finish()
				}
				color.Green("\n✓ Extraction complete\n")
			case "transform":
				color.Green("✓ Currency conversion complete\n")
			case "load":
				color.Green("✓ Table loaded into %s store\n", config.Database.Driver)
			}
		},
	})

	if err := p.Run(); err != nil {
		if spinner != nil && !spinner.IsFinished() {
			_ = spinner.Finish()
		}
		return err
	}

	color.Green("\n✓ Process complete\n")
	return nil
}
