package recorder

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"StockDashboard/internal/model"
	"StockDashboard/internal/panel"
)

// ExportCSV writes metrics as an index,Value table: a ",Value" header and one row per metric.
func ExportCSV(w io.Writer, metrics model.MetricsSnapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"", "Value"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, m := range metrics {
		if err := cw.Write([]string{m.Name, rawValue(m.Value)}); err != nil {
			return fmt.Errorf("write %s: %w", m.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes metrics to path.
func SaveCSV(path string, metrics model.MetricsSnapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := ExportCSV(f, metrics); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// rawValue keeps full precision for numbers; the two-decimal form is for display only.
func rawValue(v any) string {
	if f, ok := numeric(v); ok {
		return fmt.Sprint(f)
	}
	return panel.Value(v)
}
