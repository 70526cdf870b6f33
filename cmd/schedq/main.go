package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"schedq/internal/config"
	"schedq/internal/demo"
	"schedq/internal/shell"
	"schedq/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML config file")
	demoMode := flag.Bool("demo", false, "seed sample tasks at startup")
	flag.Parse()

	cfg := config.Load(*configPath)
	if *demoMode {
		cfg.Demo = true
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "schedq",
		Level:           parseLogLevel(cfg.LogLevel),
	})
	logger.Debug("loaded config", "path", *configPath, "bucket_min", cfg.DensityBucketMin, "chart_width", cfg.ChartWidth)

	st := store.New()
	if cfg.Demo {
		for _, t := range demo.Tasks(time.Now()) {
			st.Add(t)
		}
		logger.Info("seeded demo tasks", "count", st.Len())
	}

	shell.New(st, cfg, logger, os.Stdin, os.Stdout).Run()
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
