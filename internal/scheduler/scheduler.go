package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"StockDashboard/internal/analysis"
	"StockDashboard/internal/collector"
	"StockDashboard/internal/model"
	"StockDashboard/internal/notifier"
	"StockDashboard/internal/recorder"
	"StockDashboard/internal/selector"
	"StockDashboard/internal/state"

	"github.com/robfig/cron/v3"
)

// AnalyzeFunc computes the metrics panel for a dataset.
type AnalyzeFunc func([]model.DailyRecord) (model.MetricsSnapshot, error)

// Scheduler owns the periodic dataset refresh and the chat commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Dashboard *state.Dashboard
	Selector  *selector.Selector
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Analyze   AnalyzeFunc
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler. Metrics are computed with analysis.Analyze.
func NewScheduler(ctx context.Context, col *collector.Collector, dash *state.Dashboard, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Dashboard: dash,
		Selector:  selector.New(dash),
		Notifier:  tn,
		Recorder:  rec,
		Analyze:   analysis.Analyze,
		Ctx:       ctx,
	}
}

// RegisterRefresh schedules Refresh on a cron expression with seconds.
func (s *Scheduler) RegisterRefresh(expr string) error {
	if _, err := s.Cron.AddFunc(expr, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running refresh task")
	if err := s.Refresh(); err != nil {
		log.Printf("[ERROR] refresh: %v", err)
		s.trySend(notifier.FormatLoadFailure(s.Collector.Symbol, err))
		return
	}
	s.trySend(notifier.FormatMetricsReport(s.Collector.Symbol, s.Dashboard.Panel()))
}

// Refresh loads a new dataset, recomputes the metrics and applies both to the dashboard.
// On failure the dashboard keeps its dataset and reports the error.
func (s *Scheduler) Refresh() error {
	gen := s.Dashboard.Current().Generation + 1
	if err := s.Dashboard.BeginLoad(gen); err != nil {
		return fmt.Errorf("begin load: %w", err)
	}

	res, err := s.Collector.Collect(s.Ctx)
	if res.Generation > gen {
		gen = res.Generation
	}
	if err != nil {
		return s.fail(gen, err)
	}
	metrics, err := s.Analyze(res.Records)
	if err != nil {
		return s.fail(gen, fmt.Errorf("analyze: %w", err))
	}
	if err := s.Dashboard.CompleteLoad(gen, res.Records, metrics); err != nil {
		return fmt.Errorf("complete load: %w", err)
	}
	log.Printf("[INFO] dashboard refreshed: generation %d, %d records", gen, len(res.Records))

	if err := s.Recorder.RecordSnapshot(&recorder.Snapshot{
		Symbol:     s.Collector.Symbol,
		Source:     s.Collector.Fetcher.Name(),
		Generation: gen,
		Records:    len(res.Records),
		RecordedAt: time.Now(),
		Metrics:    metrics,
	}); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
	}
	return nil
}

func (s *Scheduler) fail(gen uint64, err error) error {
	if ferr := s.Dashboard.FailLoad(gen, err); ferr != nil {
		log.Printf("[ERROR] mark load failed: %v", ferr)
	}
	return err
}

// HandleCommand processes a chat command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	cmd := strings.ToLower(strings.TrimSpace(command))
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		cmd = cmd[:i]
	}

	switch cmd {
	case "/close":
		return s.selectSeries(model.Close)
	case "/volume":
		return s.selectSeries(model.Volume)
	case "/return", "/returns":
		return s.selectSeries(model.DailyReturn)
	case "/metrics":
		return notifier.FormatMetricsReport(s.Collector.Symbol, s.Dashboard.Panel())
	case "/refresh":
		if err := s.Refresh(); err != nil {
			return notifier.FormatLoadFailure(s.Collector.Symbol, err)
		}
		return notifier.FormatMetricsReport(s.Collector.Symbol, s.Dashboard.Panel())
	default:
		return notifier.FormatHelp()
	}
}

func (s *Scheduler) selectSeries(key model.SeriesKey) string {
	if _, err := s.Selector.Change(key.String()); err != nil {
		log.Printf("[WARN] select %s: %v", key, err)
		return fmt.Sprintf("❌ %v", err)
	}
	return notifier.FormatSelection(s.Dashboard.Chart())
}

func (s *Scheduler) trySend(text string) {
	if !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
