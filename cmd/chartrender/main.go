package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dianabombi/student-advisor-sub002/internal/bar"
	"github.com/dianabombi/student-advisor-sub002/internal/batch"
	"github.com/dianabombi/student-advisor-sub002/internal/config"
	"github.com/dianabombi/student-advisor-sub002/internal/dataset"
	"github.com/dianabombi/student-advisor-sub002/internal/segment"
)

func main() {
	os.Exit(run())
}

func run() int {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	dataDir := flag.String("data", "", "Directory of dataset files (.json, .yaml, .xml)")
	outputDir := flag.String("output", "", "Output directory (default: <data>/charts)")
	formats := flag.String("formats", "", "Comma separated output formats: svg,webp,png,tga")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	logCfg := zap.NewProductionConfig()
	if *verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := logCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		cfg, err = config.Load(*configFile)
		if err != nil {
			logger.Error("loading config", zap.Error(err))
			return 1
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		DataDir:   *dataDir,
		OutputDir: *outputDir,
		Formats:   *formats,
		Workers:   *workers,
	})
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", zap.Error(err))
		return 1
	}

	sets, err := dataset.LoadAll(cfg.DataDir)
	if err != nil {
		logger.Error("loading datasets", zap.String("dir", cfg.DataDir), zap.Error(err))
		return 1
	}
	if len(sets) == 0 {
		fmt.Println("No datasets to render.")
		return 0
	}

	fmt.Printf("Chart renderer → %s\n", strings.Join(cfg.Formats, ", "))
	fmt.Printf("Datasets: %d, Workers: %d\n", len(sets), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Formats:   cfg.Formats,
		Segment: segment.Geometry{
			Size:       cfg.SegmentSize,
			Inset:      cfg.Inset,
			InnerRatio: cfg.InnerRatio,
		},
		Bar: bar.Frame{
			Width:          cfg.BarWidth,
			BoundingHeight: cfg.BarHeight,
			Reserved:       cfg.ReservedLabelSpace,
			Gap:            cfg.BarGap,
		},
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Logger:      logger,
	}

	results := batch.Run(ctx, batchCfg, sets)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(sets))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		logger.Warn("creating output dir", zap.Error(err))
	}
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		logger.Warn("manifest write failed", zap.String("path", manifestPath), zap.Error(err))
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return 1
	}
	return 0
}
