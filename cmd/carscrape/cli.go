package main

import (
	"context"
	"io"
	"log/slog"

	"carscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   *carscrape.Config
	Logger   *slog.Logger
	Registry *carscrape.Registry
	Detector carscrape.Detector
	Vehicles carscrape.VehicleStore
	Dealers  carscrape.DealerStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"C" help:"Path to config file" type:"path"`

	Scan      ScanCmd      `cmd:"" help:"Process a directory of saved HTML pages"`
	Templates TemplatesCmd `cmd:"" help:"Print the registered templates in detection order"`
	Detect    DetectCmd    `cmd:"" help:"Classify a single saved HTML page"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Dir         string `arg:"" help:"Directory of saved HTML pages" type:"existingdir"`
	Concurrency int    `short:"c" help:"Concurrent page limit (overrides config)"`
	XLSX        bool   `help:"Also write an XLSX workbook"`
	NoDB        bool   `help:"Skip SQLite persistence"`
}

// TemplatesCmd is the "templates" subcommand.
type TemplatesCmd struct{}

// DetectCmd is the "detect" subcommand.
type DetectCmd struct {
	File string `arg:"" help:"Saved HTML file" type:"existingfile"`
	URL  string `short:"u" help:"Page URL (overrides the saved-from comment)"`
}
