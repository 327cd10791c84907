// Command landing-report generates the monthly landing page performance
// report from two dashboard extracts: a month-over-month table and a
// year-over-year table. It is a one-shot batch run: load, filter, rank,
// merge, format, write.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"lpreport/internal/config"
	"lpreport/internal/dataprocessing"
	"lpreport/internal/exporter"
	"lpreport/internal/infrastructure"
	"lpreport/pkg/contracts"
)

func main() {
	momFile := flag.String("mom", "", "month-over-month extract, CSV or XLSX (defaults to the configured file)")
	yoyFile := flag.String("yoy", "", "year-over-year extract, CSV or XLSX (defaults to the configured file)")
	out := flag.String("out", "", "output report path (defaults to the configured file under data/reports)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	// Optional .env next to the working directory, before config reads env
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg.Logging.FilePath = paths.GetLogPath(cfg.Logging.FilePath)
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *momFile == "" {
		*momFile = cfg.Report.MoMFile
	}
	if *yoyFile == "" {
		*yoyFile = cfg.Report.YoYFile
	}
	if *out == "" {
		*out = cfg.Report.OutputFile
	}

	momPath := paths.ResolveInput(*momFile)
	yoyPath := paths.ResolveInput(*yoyFile)
	outPath := paths.GetReportPath(*out)

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())
	logger = infrastructure.LoggerFromContext(ctx)

	logger.Info("Starting landing page report generation",
		slog.String("version", contracts.Version),
		slog.String("mom_file", momPath),
		slog.String("yoy_file", yoyPath),
		slog.String("output_file", outPath),
		slog.Int("top_n", cfg.Report.TopN))

	mom, err := dataprocessing.LoadTable(momPath, dataprocessing.MoMColumns)
	if err != nil {
		logger.Error("Failed to load MoM table", slog.String("error", err.Error()))
		os.Exit(1)
	}
	yoy, err := dataprocessing.LoadTable(yoyPath, dataprocessing.YoYColumns)
	if err != nil {
		logger.Error("Failed to load YoY table", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Loaded extracts",
		slog.Int("mom_rows", len(mom)),
		slog.Int("yoy_rows", len(yoy)))

	mom = dataprocessing.FilterChannels(mom, cfg.Report.Channels)
	yoy = dataprocessing.FilterChannels(yoy, cfg.Report.Channels)
	logger.Info("Filtered channels of interest",
		slog.Int("mom_rows", len(mom)),
		slog.Int("yoy_rows", len(yoy)),
		slog.Any("channels", cfg.Report.Channels))

	momTop := dataprocessing.TopPages(mom, cfg.Report.TopN, dataprocessing.BySessions)
	yoyTop := dataprocessing.TopPages(yoy, cfg.Report.TopN, dataprocessing.BySessions)

	summarizer := dataprocessing.NewSummarizer(logger)
	summary := summarizer.Merge(ctx, momTop, yoyTop)

	writer := exporter.NewMarkdownWriter(logger, cfg.Report.MinSessions)
	if err := writer.Write(ctx, outPath, summary); err != nil {
		logger.Error("Failed to write report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Landing page report generation completed",
		slog.String("output_file", outPath),
		slog.Int("summary_rows", len(summary)))
}
