package collector

import (
	"context"

	"StockDashboard/internal/model"
)

// Fetcher defines the interface for fetching the dashboard's daily records.
type Fetcher interface {
	FetchDailyRecords(ctx context.Context, symbol string) ([]model.DailyRecord, error)
	Name() string
}
