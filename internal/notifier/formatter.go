package notifier

import (
	"fmt"
	"strings"
	"time"

	"StockDashboard/internal/chart"
	"StockDashboard/internal/panel"
)

// FormatMetricsReport formats the metrics panel into a Telegram message.
func FormatMetricsReport(symbol string, rows []panel.Row) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>Key Analysis Metrics</b> | %s | %s\n\n", symbol, time.Now().Format("2006-01-02")))
	if len(rows) == 0 {
		b.WriteString("No metrics available.\n")
		return b.String()
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s: <b>%s</b>\n", r.Label, r.Value))
	}
	return b.String()
}

// FormatSelection summarises the chart now on screen.
func FormatSelection(d chart.Description) string {
	if d.Empty() {
		return "📈 Nothing to chart."
	}
	first, last := d.Points[0], d.Points[len(d.Points)-1]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📈 <b>%s</b> (%s chart)\n\n", d.Title, d.Kind))
	b.WriteString(fmt.Sprintf("%d points, %s to %s\n", len(d.Points), first.Date, last.Date))
	b.WriteString(fmt.Sprintf("First: %s | Last: %s\n", panel.Value(first.Value), panel.Value(last.Value)))
	return b.String()
}

// FormatLoadFailure reports a refresh that did not complete.
func FormatLoadFailure(symbol string, err error) string {
	return fmt.Sprintf("❌ Refresh of %s failed: %v\nThe previous dataset is still shown.", symbol, err)
}

// FormatHelp lists the chat commands.
func FormatHelp() string {
	return "Available commands:\n• /close - Close Price chart\n• /volume - Volume chart\n• /return - Daily Returns chart\n• /metrics - Key Analysis Metrics\n• /refresh - reload the dataset"
}
