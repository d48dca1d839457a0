package cli

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"StockDashboard/internal/chart"
	"StockDashboard/internal/model"
	"StockDashboard/internal/recorder"
)

const sampleCSV = `Date,Close,Volume
2024-01-01,100,1000000
2024-01-02,102,1200000
2024-01-03,101,950000
2024-01-04,103,1100000
2024-01-05,105,1300000
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "test.db"))

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", filepath.Join(dir, "missing.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "prices.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "analysis_results.csv")

	out, err := run(t, "analyze", "--csv", csvPath, "--out", outPath)
	if err != nil {
		t.Fatalf("analyze: %v\n%s", err, out)
	}
	for _, want := range []string{"Stock Market Analysis", "5 trading days", "TOTAL TRADING DAYS", "5.00", "105.00", "Analysis saved to"} {
		if !strings.Contains(strings.ToUpper(out), strings.ToUpper(want)) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	saved, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read saved analysis: %v", err)
	}
	if !strings.HasPrefix(string(saved), ",Value\nTotal_Trading_Days,5\n") {
		t.Errorf("saved analysis = %q", saved)
	}
}

func TestAnalyze_RecordsSnapshot(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "prices.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	dbPath := filepath.Join(dir, "runs.db")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	t.Setenv("SQLITE_PATH", dbPath)
	t.Setenv("SYMBOL", "TEST")
	cmd.SetArgs([]string{"analyze", "--csv", csvPath, "--config", filepath.Join(dir, "missing.yaml")})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	rec, err := recorder.NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer rec.Close()
	snap, err := rec.LatestSnapshot("TEST")
	if err != nil {
		t.Fatalf("LatestSnapshot: %v", err)
	}
	if snap.Records != 5 || snap.Source != "csv" {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestAnalyze_RequiresCSV(t *testing.T) {
	if _, err := run(t, "analyze"); err == nil {
		t.Error("expected missing --csv error")
	}
}

func TestRender(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "volume.svg")

	out, err := run(t, "render", "--series", "volume", "--format", "svg", "-o", outPath)
	if err != nil {
		t.Fatalf("render: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Daily Trading Volume (5 points)") {
		t.Errorf("output = %q", out)
	}
	body, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(body, []byte("<svg")) {
		t.Error("output file is not svg")
	}
}

func TestRender_BadSeries(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "x.png")
	if _, err := run(t, "render", "--series", "Market_Cap", "-o", outPath); err == nil {
		t.Error("expected unknown series error")
	}
}

func TestMetrics_Mock(t *testing.T) {
	out, err := run(t, "metrics")
	if err != nil {
		t.Fatalf("metrics: %v\n%s", err, out)
	}
	for _, want := range []string{"1110000.00", "102.20", "-0.30"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_HeaderOnlyCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(csvPath, []byte("Date,Close,Volume\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "empty.png")

	out, err := run(t, "render", "--csv", csvPath, "-o", outPath)
	if err != nil {
		t.Fatalf("render: %v\n%s", err, out)
	}
	if !strings.Contains(out, "(0 points)") {
		t.Errorf("output = %q", out)
	}
	if fi, err := os.Stat(outPath); err != nil || fi.Size() == 0 {
		t.Errorf("expected a blank chart at %s: %v", outPath, err)
	}
}

func TestAnalyze_HeaderOnlyCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(csvPath, []byte("Date,Close,Volume\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "analyze", "--csv", csvPath)
	if err != nil {
		t.Fatalf("analyze: %v\n%s", err, out)
	}
	if !strings.Contains(out, "0 trading days") || !strings.Contains(out, "0.00") {
		t.Errorf("output = %q", out)
	}
}

func TestWriteChart_FailureLeavesNoFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "broken.png")
	desc := chart.Render([]model.DailyRecord{{Date: "2024-01-01", Close: math.Inf(1)}}, model.Close)

	if err := writeChart(outPath, desc, chart.FormatPNG, 0); err == nil {
		t.Fatal("expected draw error")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Errorf("output file should not exist, stat err = %v", err)
	}
}
