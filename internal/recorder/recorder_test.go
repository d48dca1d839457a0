package recorder

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/kylelemons/godebug/pretty"

	"StockDashboard/internal/model"
)

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	metrics := model.NewMetricsSnapshot(
		model.Metric{Name: "Total_Trading_Days", Value: 5},
		model.Metric{Name: "Average_Close_Price", Value: 102.2},
		model.Metric{Name: "Note", Value: "mock"},
	)
	if err := ExportCSV(&buf, metrics); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	want := ",Value\nTotal_Trading_Days,5\nAverage_Close_Price,102.2\nNote,mock\n"
	if diff := pretty.Compare(want, buf.String()); diff != "" {
		t.Errorf("csv: -want/+got:\n%s", diff)
	}
}

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "dashboard.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	defer rec.Close()

	for gen, avg := range []float64{100, 102.2} {
		err := rec.RecordSnapshot(&Snapshot{
			Symbol:     "SPX500",
			Source:     "csv",
			Generation: uint64(gen + 1),
			Records:    5,
			RecordedAt: time.Unix(1704067200, 0),
			Metrics: model.NewMetricsSnapshot(
				model.Metric{Name: "Average_Close_Price", Value: avg},
				model.Metric{Name: "Total_Trading_Days", Value: 5},
				model.Metric{Name: "Note", Value: "ok"},
			),
		})
		if err != nil {
			t.Fatalf("RecordSnapshot: %v", err)
		}
	}

	got, err := rec.LatestSnapshot("SPX500")
	if err != nil {
		t.Fatalf("LatestSnapshot: %v", err)
	}
	if got.Generation != 2 || got.Source != "csv" || got.Records != 5 {
		t.Errorf("unexpected run %+v", got)
	}
	want := model.NewMetricsSnapshot(
		model.Metric{Name: "Average_Close_Price", Value: 102.2},
		model.Metric{Name: "Total_Trading_Days", Value: 5.0},
		model.Metric{Name: "Note", Value: "ok"},
	)
	if diff := pretty.Compare(want, got.Metrics); diff != "" {
		t.Errorf("metrics: -want/+got:\n%s", diff)
	}
}

func TestSQLiteRecorder_NoRuns(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	defer rec.Close()
	if _, err := rec.LatestSnapshot("NONE"); err == nil {
		t.Error("expected error with no runs")
	}
}
