// Package panel turns a metrics snapshot into display rows.
package panel

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"StockDashboard/internal/model"
)

// Row is one labelled, formatted metric.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Format renders every metric of s in order.
func Format(s model.MetricsSnapshot) []Row {
	rows := make([]Row, 0, len(s))
	for _, m := range s {
		rows = append(rows, Row{Label: Label(m.Name), Value: Value(m.Value)})
	}
	return rows
}

// Label turns an identifier like Average_Volume into "Average Volume".
func Label(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// Value prints numbers with exactly two decimals and anything else as is.
func Value(v any) string {
	switch n := v.(type) {
	case decimal.Decimal:
		return n.StringFixed(2)
	case float64:
		return fixed(n)
	case float32:
		return fixed(float64(n))
	case int:
		return decimal.NewFromInt(int64(n)).StringFixed(2)
	case int8:
		return decimal.NewFromInt(int64(n)).StringFixed(2)
	case int16:
		return decimal.NewFromInt(int64(n)).StringFixed(2)
	case int32:
		return decimal.NewFromInt(int64(n)).StringFixed(2)
	case int64:
		return decimal.NewFromInt(n).StringFixed(2)
	case uint:
		return unsigned(uint64(n))
	case uint8:
		return unsigned(uint64(n))
	case uint16:
		return unsigned(uint64(n))
	case uint32:
		return unsigned(uint64(n))
	case uint64:
		return unsigned(n)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

func fixed(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return decimal.NewFromFloat(f).StringFixed(2)
}

func unsigned(u uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0).StringFixed(2)
}

// Table writes rows as a two-column terminal table.
func Table(w io.Writer, rows []Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, r := range rows {
		table.Append([]string{r.Label, r.Value})
	}
	table.Render()
}
