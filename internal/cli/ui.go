package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"StockDashboard/internal/panel"
)

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#3B82F6")).
		Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280"))

	sectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#10B981")).
		MarginTop(1)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)
)

func printHeader(w io.Writer, title, subtitle string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	if subtitle != "" {
		fmt.Fprintln(w, subtitleStyle.Render(subtitle))
	}
}

func printMetrics(w io.Writer, rows []panel.Row) {
	fmt.Fprintln(w, sectionStyle.Render("Key Analysis Metrics"))
	panel.Table(w, rows)
}

func printDone(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, okStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}
