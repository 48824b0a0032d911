package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newsdigest/pkg/config"
	"github.com/umputun/newsdigest/pkg/content"
	"github.com/umputun/newsdigest/pkg/feed"
	"github.com/umputun/newsdigest/pkg/llm"
	"github.com/umputun/newsdigest/pkg/notify"
	"github.com/umputun/newsdigest/pkg/pipeline"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`
	DryRun bool   `long:"dry-run" description:"log messages instead of delivering them"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] run failed: %v", err)
		os.Exit(1)
	}
}

// run executes a single pipeline pass with components built from config
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// secrets are masked in all log output
	setupLog(opts.Debug, cfg.LLM.APIKey, cfg.Notify.WebhookURL)
	log.Printf("[INFO] starting newsdigest version %s", revision)

	var extractor pipeline.Extractor
	if cfg.Extraction.Enabled {
		extractor = content.NewHTTPExtractor(cfg.Extraction.Timeout, cfg.Feed.UserAgent, cfg.Extraction.MinTextLength)
	}

	processor := pipeline.NewProcessor(pipeline.Params{
		Ingestor:          feed.NewIngestor(feed.NewParser(cfg.Feed.Timeout, cfg.Feed.UserAgent)),
		Classifier:        llm.NewClassifier(cfg.LLM),
		Summarizer:        llm.NewSummarizer(cfg.LLM),
		Extractor:         extractor,
		Notifier:          notify.NewSlack(cfg.Notify.WebhookURL, cfg.Notify.Timeout, opts.DryRun),
		Feeds:             cfg.Feeds,
		LedgerPath:        cfg.Ledger.Path,
		Retention:         cfg.Retention(),
		WebhookConfigured: cfg.Notify.WebhookURL != "",
		DryRun:            opts.DryRun,
	})

	if err := processor.Run(ctx); err != nil {
		return fmt.Errorf("pipeline run: %w", err)
	}

	log.Print("[INFO] run complete")
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(os.Stdout), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	// mask configured secrets in log output
	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
