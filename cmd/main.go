package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	basia "github.com/pskeshu/basia"
)

type CliFlags struct {
	Cfg      *string
	Endpoint *string
	Model    *string
	Image    *string
	Watch    *bool
	Debug    *bool
	JsonLogs *bool
}

func main() {

	godotenv.Load()

	cli := CliFlags{
		Cfg:      flag.String("cfg", "", "config file location"),
		Endpoint: flag.String("endpoint", "", "ollama server url"),
		Model:    flag.String("model", "", "model name"),
		Image:    flag.String("image", "", "test image location"),
		Watch:    flag.Bool("watch", false, "keep re-running the checks on an interval"),
		Debug:    flag.Bool("debug", false, "enable debug logging"),
		JsonLogs: flag.Bool("json_logs", false, "log in json format"),
	}
	flag.Parse()

	if os.Getenv("DEBUG") == "true" || *cli.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if os.Getenv("LOGFMT") == "json" || *cli.JsonLogs {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	}

	if *cli.Cfg == "" {
		if loc, has := FindConfig([]string{
			"./basia.yml",
			"/etc/basia/basia.yml",
		}); has {
			cli.Cfg = &loc
		}
	}

	//	a missing config file is fine, every option has a default
	cfg := &FileConfig{}

	if *cli.Cfg != "" {

		loaded, err := LoadConfigFile(*cli.Cfg)
		if err != nil {
			slog.Error("Failed to load config",
				slog.String("err", err.Error()))
			os.Exit(1)
		}

		cfg = loaded
	}

	if err := cfg.Valid(); err != nil {
		slog.Error("Failed to validate config",
			slog.String("err", err.Error()))
		os.Exit(1)
	}

	if *cli.Endpoint != "" {
		cfg.Endpoint = *cli.Endpoint
	}

	if *cli.Model != "" {
		cfg.Model = *cli.Model
	}

	if *cli.Image != "" {
		cfg.Image = *cli.Image
	}

	client, err := basia.NewVlmClient(basia.VlmClientOptions{
		Endpoint: cfg.Endpoint,
		Model:    cfg.Model,
		ProxyUrl: cfg.ProxyUrl,
		Timeout:  cfg.RequestTimeout(),
	})
	if err != nil {
		slog.Error("Failed to set up vlm client",
			slog.String("err", err.Error()))
		os.Exit(1)
	}

	var writer basia.ResultWriter

	if val := os.Getenv("TIMESCALE_URL"); val != "" {

		timescale, err := basia.NewTimescaleStorage(val)
		if err != nil {
			slog.Error("Failed to set up timescale storage",
				slog.String("err", err.Error()))
			os.Exit(1)
		}

		writer = timescale
		defer timescale.Close()
	} else {
		writer = &StdoutWriter{}
	}

	slog.Debug("USING STORAGE",
		slog.String("type", writer.Type()),
		slog.String("version", writer.Version()))

	imagePath := cfg.Image
	if imagePath == "" {
		imagePath = "test.jpg"
	}

	runner := &basia.Runner{
		Chat: &basia.ChatCheck{
			Label:  "connection",
			Client: client,
		},
		Vision: &basia.VisionCheck{
			Label:     "vision",
			Client:    client,
			ImagePath: imagePath,
		},
		Writer: writer,
	}

	if *cli.Watch {
		runWatch(runner, cfg.Watch.IntervalValue())
		return
	}

	runner.Observer = &ConsoleReporter{ImagePath: imagePath}

	printBanner()

	ctx := context.Background()

	summary, err := runner.RunOnce(ctx)
	if err != nil {
		slog.Error("Failed to run checks",
			slog.String("err", err.Error()))
		os.Exit(1)
	}

	if !summary.Ok() {
		printConnectionHints(ctx, client.Host(), client.Model())
		os.Exit(1)
	}

	printSummary(summary)
}

func runWatch(runner *basia.Runner, interval time.Duration) {

	slog.Info("Watch mode enabled",
		slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	exitCh := make(chan os.Signal, 2)
	signal.Notify(exitCh, syscall.SIGINT, syscall.SIGTERM)

	var invokeRun = func() {

		started := time.Now()

		summary, err := runner.RunOnce(context.Background())
		if err != nil {
			slog.Error("runner.RunOnce",
				slog.String("err", err.Error()))
			return
		}

		slog.Info("runner.RunOnce",
			slog.String("run_id", summary.RunID),
			slog.Bool("ok", summary.Ok()),
			slog.Duration("t", time.Since(started)))
	}

	invokeRun()

	for {
		select {

		case <-ticker.C:
			invokeRun()

		case <-exitCh:
			slog.Warn("Shutting down...")
			return
		}
	}
}
