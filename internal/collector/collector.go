package collector

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"StockDashboard/internal/model"
)

// SampleRecords is the static five-day dataset the dashboard mounts with.
func SampleRecords() []model.DailyRecord {
	return []model.DailyRecord{
		{Date: "2024-01-01", Close: 100, Volume: 1000000, DailyReturn: 0.5},
		{Date: "2024-01-02", Close: 102, Volume: 1200000, DailyReturn: 1.2},
		{Date: "2024-01-03", Close: 101, Volume: 950000, DailyReturn: -0.3},
		{Date: "2024-01-04", Close: 103, Volume: 1100000, DailyReturn: 0.8},
		{Date: "2024-01-05", Close: 105, Volume: 1300000, DailyReturn: 1.5},
	}
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Records []model.DailyRecord
	Err     error
	Delay   time.Duration
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyRecords(ctx context.Context, _ string) ([]model.DailyRecord, error) {
	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.Delay):
		}
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Records != nil {
		return model.CloneRecords(m.Records), nil
	}
	return SampleRecords(), nil
}

// Result is the outcome of one fetch.
type Result struct {
	Generation uint64
	Records    []model.DailyRecord
	FetchedAt  time.Time
}

type call struct {
	done chan struct{}
	res  Result
	err  error
}

// Collector runs fetches against a Fetcher. At most one fetch is in flight;
// callers arriving meanwhile share its result.
type Collector struct {
	Fetcher Fetcher
	Symbol  string

	mu       sync.Mutex
	gen      uint64
	inflight *call
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol}
}

// Collect fetches and validates the daily records.
func (c *Collector) Collect(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if cl := c.inflight; cl != nil {
		c.mu.Unlock()
		select {
		case <-cl.done:
			return cl.res, cl.err
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}
	c.gen++
	cl := &call{done: make(chan struct{}), res: Result{Generation: c.gen}}
	c.inflight = cl
	c.mu.Unlock()

	records, err := c.Fetcher.FetchDailyRecords(ctx, c.Symbol)
	if err != nil {
		cl.err = fmt.Errorf("fetch daily records from %s: %w", c.Fetcher.Name(), err)
	} else if err := ValidateRecords(records); err != nil {
		cl.err = fmt.Errorf("validate records from %s: %w", c.Fetcher.Name(), err)
	} else {
		cl.res.Records = records
		cl.res.FetchedAt = time.Now()
		log.Printf("[INFO] collected %d records for %s from %s", len(records), c.Symbol, c.Fetcher.Name())
	}

	c.mu.Lock()
	c.inflight = nil
	c.mu.Unlock()
	close(cl.done)

	return cl.res, cl.err
}

// ValidateRecords checks dates are unique and ascending, closes positive and volumes non-negative.
func ValidateRecords(records []model.DailyRecord) error {
	var prev time.Time
	for i, r := range records {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return fmt.Errorf("record %d: bad date %q: %w", i, r.Date, err)
		}
		if i > 0 && !d.After(prev) {
			return fmt.Errorf("record %d: date %s not after %s", i, r.Date, records[i-1].Date)
		}
		if r.Close <= 0 {
			return fmt.Errorf("record %d (%s): close must be positive, got %v", i, r.Date, r.Close)
		}
		if r.Volume < 0 {
			return fmt.Errorf("record %d (%s): negative volume %d", i, r.Date, r.Volume)
		}
		prev = d
	}
	return nil
}
