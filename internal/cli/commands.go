// Package cli implements the dashboard command line.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"StockDashboard/internal/analysis"
	"StockDashboard/internal/chart"
	"StockDashboard/internal/collector"
	"StockDashboard/internal/config"
	"StockDashboard/internal/model"
	"StockDashboard/internal/notifier"
	"StockDashboard/internal/panel"
	"StockDashboard/internal/recorder"
	"StockDashboard/internal/scheduler"
	"StockDashboard/internal/state"
	"StockDashboard/internal/web"
)

type app struct {
	cfgPath string
	cfg     *config.Config
}

// NewRootCmd creates the root command. Without a subcommand it serves the dashboard.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Stock Market Analysis Dashboard",
		Long: `Serves an interactive stock dashboard: pick Close, Volume or Daily Returns,
see the chart for that series and the key analysis metrics of the dataset.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd)
		},
	}

	defaultPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", defaultPath, "Configuration file path")

	rootCmd.AddCommand(a.newServeCmd())
	rootCmd.AddCommand(a.newAnalyzeCmd())
	rootCmd.AddCommand(a.newRenderCmd())
	rootCmd.AddCommand(a.newMetricsCmd())

	return rootCmd
}

func (a *app) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd)
		},
	}
}

func (a *app) runServe(cmd *cobra.Command) error {
	cfg := a.cfg
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher, cfg.DataSource.Symbol)

	dash, err := state.New()
	if err != nil {
		return err
	}

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	rec := newRecorder(cfg.Database.SQLitePath)
	defer rec.Close()

	sched := scheduler.NewScheduler(ctx, col, dash, tn, rec)
	sched.Analyze = analyzerFor(cfg.DataSource.Kind)

	if cfg.DataSource.Kind == config.SourceMock {
		records := collector.SampleRecords()
		if err := dash.Mount(records, analysis.MockSnapshot(records)); err != nil {
			return fmt.Errorf("mount dashboard: %w", err)
		}
	} else {
		if err := sched.Refresh(); err != nil {
			log.Printf("[WARN] initial load failed: %v", err)
		}
		if err := sched.RegisterRefresh(cfg.Schedule.RefreshCron); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()
	}

	go tn.StartPolling(ctx, sched.HandleCommand)

	log.Println("[INFO] dashboard is running. Press Ctrl+C to stop.")
	return web.New(dash, cfg.DataSource.Symbol).ListenAndServe(ctx, cfg.Server.Addr)
}

func (a *app) newAnalyzeCmd() *cobra.Command {
	var csvPath, outPath string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a CSV of daily prices and print the key metrics",
		Long: `Load a CSV with Date, Close and Volume columns (Daily_Return optional),
compute the analysis, print it and optionally save it to CSV.
Example: dashboard analyze --csv data/spx.csv --out analysis_results.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			cfg.DataSource.Kind = config.SourceCSV
			cfg.DataSource.CSVPath = csvPath
			return runAnalyze(cmd, &cfg, outPath)
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file with daily records")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Save the analysis to this CSV file")
	cmd.MarkFlagRequired("csv")
	return cmd
}

func runAnalyze(cmd *cobra.Command, cfg *config.Config, outPath string) error {
	w := cmd.OutOrStdout()

	res, metrics, err := loadDataset(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	span := "no records"
	if n := len(res.Records); n > 0 {
		span = res.Records[0].Date + " to " + res.Records[n-1].Date
	}
	printHeader(w, "Stock Market Analysis",
		fmt.Sprintf("%s | %d trading days | %s", cfg.DataSource.CSVPath, len(res.Records), span))
	printMetrics(w, panel.Format(metrics))

	if outPath != "" {
		if err := recorder.SaveCSV(outPath, metrics); err != nil {
			return fmt.Errorf("save analysis: %w", err)
		}
		printDone(w, "Analysis saved to %s", outPath)
	}

	rec := newRecorder(cfg.Database.SQLitePath)
	defer rec.Close()
	if err := rec.RecordSnapshot(&recorder.Snapshot{
		Symbol:     cfg.DataSource.Symbol,
		Source:     config.SourceCSV,
		Generation: res.Generation,
		Records:    len(res.Records),
		RecordedAt: res.FetchedAt,
		Metrics:    metrics,
	}); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
	}
	return nil
}

func (a *app) newRenderCmd() *cobra.Command {
	var series, format, outPath, csvPath string
	var width int
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the chart for one series to a PNG or SVG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := model.ParseSeriesKey(series)
			if err != nil {
				return err
			}
			f, err := chart.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg := *a.cfg
			if csvPath != "" {
				cfg.DataSource.Kind = config.SourceCSV
				cfg.DataSource.CSVPath = csvPath
			}
			return runRender(cmd, &cfg, key, f, width, outPath)
		},
	}
	cmd.Flags().StringVar(&series, "series", model.Close.String(), "Series to chart: Close, Volume or Daily_Return")
	cmd.Flags().StringVar(&format, "format", "png", "Output format: png or svg")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Chart this CSV instead of the configured source")
	cmd.Flags().IntVar(&width, "width", chart.DefaultWidth, "Image width in pixels")
	cmd.MarkFlagRequired("out")
	return cmd
}

func runRender(cmd *cobra.Command, cfg *config.Config, key model.SeriesKey, f chart.Format, width int, outPath string) error {
	res, _, err := loadDataset(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	desc := chart.Render(res.Records, key)
	if err := writeChart(outPath, desc, f, width); err != nil {
		return err
	}
	printDone(cmd.OutOrStdout(), "%s (%d points) written to %s", desc.Title, len(desc.Points), outPath)
	return nil
}

// writeChart draws desc and writes it to path. Nothing is written when drawing fails.
func writeChart(path string, desc chart.Description, f chart.Format, width int) error {
	var buf bytes.Buffer
	if err := chart.Draw(&buf, desc, f, width); err != nil {
		return fmt.Errorf("draw chart: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (a *app) newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Print the key analysis metrics of the configured source",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}
			res, metrics, err := loadDataset(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printHeader(w, "Stock Market Analysis Dashboard",
				fmt.Sprintf("%s | %s | %d trading days", a.cfg.DataSource.Symbol, a.cfg.DataSource.Kind, len(res.Records)))
			printMetrics(w, panel.Format(metrics))
			return nil
		},
	}
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
