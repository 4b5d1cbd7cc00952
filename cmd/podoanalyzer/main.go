package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/podolab/podo-analyzer/internal/pressure"
	"github.com/podolab/podo-analyzer/internal/render"
	"github.com/podolab/podo-analyzer/internal/report"
	"github.com/podolab/podo-analyzer/internal/source"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	inputDir := flag.String("i", "data", "directory containing pressure capture JSON files")
	outputDir := flag.String("o", "output", "directory to write report images into")
	pdfOut := flag.Bool("pdf", false, "also generate a PDF report per capture")
	threshold := flag.Int("threshold", pressure.DefaultConfig().NoiseThreshold, "noise threshold; cells at or below it are discarded")
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.BoolVar(&showVersion, "v", false, "print version information and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("podoanalyzer %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log := newLogger()

	cfg := pressure.DefaultConfig()
	cfg.NoiseThreshold = *threshold

	matches, err := filepath.Glob(filepath.Join(*inputDir, "*.json"))
	if err != nil {
		log.Fatal().Err(err).Str("dir", *inputDir).Msg("failed to scan input directory")
	}
	if len(matches) == 0 {
		log.Fatal().Str("dir", *inputDir).Msg("no capture files found")
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", *outputDir).Msg("failed to create output directory")
	}

	processed := 0
	for _, path := range matches {
		if err := processCapture(log, path, *outputDir, cfg, *pdfOut); err != nil {
			log.Error().Err(err).Str("file", path).Msg("skipping capture")
			continue
		}
		processed++
	}

	log.Info().Int("processed", processed).Int("total", len(matches)).Msg("done")
	if processed == 0 {
		os.Exit(1)
	}
}

// processCapture runs the full pipeline for a single capture file and
// writes its report artifacts next to the configured output directory.
func processCapture(log zerolog.Logger, path, outputDir string, cfg pressure.Config, pdfOut bool) error {
	grid, err := source.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	result, err := pressure.Analyze(grid, cfg)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", filepath.Base(path), err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stamp := time.Now().Format("20060102_150405")
	imagePath := filepath.Join(outputDir, fmt.Sprintf("%s_%s_report.png", base, stamp))

	opts := render.DefaultOptions()
	if err := render.RenderToFile(result, opts, imagePath); err != nil {
		return fmt.Errorf("rendering %s: %w", filepath.Base(path), err)
	}
	log.Info().Str("image", imagePath).Msg("wrote heatmap")

	for side, ft := range result.FootTypes {
		log.Info().
			Str("file", filepath.Base(path)).
			Str("side", side).
			Str("type", string(ft.Type)).
			Float64("arch_index", ft.ArchIndex).
			Float64("score", ft.Score).
			Msg("classified foot")
	}

	if !pdfOut {
		return nil
	}

	heatmapPNG, err := render.RenderPNG(result, opts)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", filepath.Base(path), err)
	}
	// Degenerate captures have no distribution to chart; the PDF still
	// carries the heatmap and the classification table.
	var chartPNG []byte
	if len(result.Distribution) > 0 {
		chartPNG, err = report.DistributionChart(result)
		if err != nil {
			return fmt.Errorf("charting %s: %w", filepath.Base(path), err)
		}
	}
	pdfBytes, err := report.GeneratePDF(result, heatmapPNG, chartPNG, report.Meta{
		SourceName:  filepath.Base(path),
		GeneratedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("building PDF for %s: %w", filepath.Base(path), err)
	}

	pdfPath := filepath.Join(outputDir, fmt.Sprintf("%s_%s_report.pdf", base, stamp))
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", pdfPath, err)
	}
	log.Info().Str("pdf", pdfPath).Msg("wrote PDF report")
	return nil
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if env := os.Getenv("PODO_LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
