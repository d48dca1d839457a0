package collector

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"StockDashboard/internal/calculator"
	"StockDashboard/internal/model"
)

// CSVFetcher reads daily records from a CSV file with a Date,Close,Volume[,Daily_Return] header.
type CSVFetcher struct {
	Path string
}

func NewCSVFetcher(path string) *CSVFetcher {
	return &CSVFetcher{Path: path}
}

func (f *CSVFetcher) Name() string { return "csv" }

func (f *CSVFetcher) FetchDailyRecords(ctx context.Context, _ string) ([]model.DailyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()
	return ParseCSV(file)
}

// ParseCSV decodes records, sorts them by date and derives Daily_Return from
// Close when the column is missing.
func ParseCSV(r io.Reader) ([]model.DailyRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, need := range []string{"date", "close", "volume"} {
		if _, ok := cols[need]; !ok {
			return nil, fmt.Errorf("csv header missing %q column", need)
		}
	}
	retCol, hasReturn := cols["daily_return"]

	var records []model.DailyRecord
	seen := map[string]bool{}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		d, err := time.Parse("2006-01-02", strings.TrimSpace(row[cols["date"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: parse date: %w", line, err)
		}
		date := d.Format("2006-01-02")
		if seen[date] {
			return nil, fmt.Errorf("line %d: duplicate date %s", line, date)
		}
		seen[date] = true

		closePrice, err := strconv.ParseFloat(strings.TrimSpace(row[cols["close"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse close: %w", line, err)
		}
		vol, err := strconv.ParseFloat(strings.TrimSpace(row[cols["volume"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse volume: %w", line, err)
		}
		rec := model.DailyRecord{Date: date, Close: closePrice, Volume: int64(vol)}
		if hasReturn {
			if s := strings.TrimSpace(row[retCol]); s != "" {
				if rec.DailyReturn, err = strconv.ParseFloat(s, 64); err != nil {
					return nil, fmt.Errorf("line %d: parse daily return: %w", line, err)
				}
			}
		}
		records = append(records, rec)
	}

	// ISO dates sort lexically.
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date < records[j].Date })

	if !hasReturn {
		applyReturns(records)
	}
	return records, nil
}

// applyReturns fills DailyReturn with the percent change of Close. Rows without
// a usable previous close are marked NoReturn.
func applyReturns(records []model.DailyRecord) {
	closes := calculator.ExtractCloses(records)
	returns := calculator.PercentChange(closes)
	for i := range records {
		records[i].DailyReturn = returns[i]
		records[i].NoReturn = i == 0 || closes[i-1] == 0
	}
}
