package cli

import (
	"context"
	"fmt"
	"log"

	"StockDashboard/internal/analysis"
	"StockDashboard/internal/collector"
	"StockDashboard/internal/config"
	"StockDashboard/internal/model"
	"StockDashboard/internal/recorder"
	"StockDashboard/internal/scheduler"
)

// newFetcher builds the data source named by the config.
func newFetcher(cfg *config.Config) (collector.Fetcher, error) {
	switch cfg.DataSource.Kind {
	case config.SourceMock:
		return &collector.MockFetcher{}, nil
	case config.SourceCSV:
		return collector.NewCSVFetcher(cfg.DataSource.CSVPath), nil
	case config.SourceYahoo:
		return collector.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.DataSource.Range, cfg.Proxy), nil
	}
	return nil, fmt.Errorf("unknown data source %q", cfg.DataSource.Kind)
}

// analyzerFor returns the metrics function for a source. The mock dataset is
// shown with its fixed statistics.
func analyzerFor(kind string) scheduler.AnalyzeFunc {
	if kind == config.SourceMock {
		return func(records []model.DailyRecord) (model.MetricsSnapshot, error) {
			return analysis.MockSnapshot(records), nil
		}
	}
	return analysis.Analyze
}

// newRecorder opens the SQLite recorder, falling back to a noop one.
func newRecorder(path string) recorder.Recorder {
	if path == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(path)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return sr
}

// loadDataset collects records once and computes their metrics.
func loadDataset(ctx context.Context, cfg *config.Config) (collector.Result, model.MetricsSnapshot, error) {
	fetcher, err := newFetcher(cfg)
	if err != nil {
		return collector.Result{}, nil, err
	}
	res, err := collector.NewCollector(fetcher, cfg.DataSource.Symbol).Collect(ctx)
	if err != nil {
		return collector.Result{}, nil, err
	}
	metrics, err := analyzerFor(cfg.DataSource.Kind)(res.Records)
	if err != nil {
		return collector.Result{}, nil, fmt.Errorf("analyze: %w", err)
	}
	return res, metrics, nil
}
