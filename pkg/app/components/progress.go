package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/appassets/pkg/app/styles"
	"github.com/kerbaras/appassets/pkg/data"
	"github.com/kerbaras/appassets/pkg/services"
)

// Notice renders the console line for a conversion notice. Only finished
// jobs and the end of the batch produce a line; everything else is "".
func Notice(progress services.ConversionProgress) string {
	switch progress.Status {
	case services.StatusComplete:
		return fmt.Sprintf("%s %s → %s",
			styles.StatusCompleted.Render("✅"),
			progress.Job.Source,
			progress.Job.Destination)
	case services.StatusError:
		return fmt.Sprintf("%s %s: %s",
			styles.StatusError.Render("❌"),
			progress.Job.Source,
			styles.StatusError.Render(errorText(progress.Err)))
	case services.StatusDone:
		return CompletionLine(progress.Report)
	default:
		return ""
	}
}

// CompletionLine summarizes a finished batch in one line
func CompletionLine(report *data.BatchReport) string {
	if report == nil {
		return styles.StatusCompleted.Render("Done")
	}

	failed := len(report.Failed())
	text := fmt.Sprintf("Done: %d converted, %d failed", report.Succeeded(), failed)
	if failed > 0 {
		return styles.StatusStyle("partial").Render(text)
	}
	return styles.StatusStyle("done").Render(text)
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// Summary renders a table with one row per job
func Summary(report data.BatchReport) string {
	var (
		headerStyle = lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true).Align(lipgloss.Center)
		cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Muted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Headers("Status", "Source", "Destination", "Size", "Time")

	for _, r := range report.Results {
		status := "ok"
		if !r.OK() {
			status = "failed"
		}
		t.Row(
			status,
			truncateString(r.Job.Source, 40),
			truncateString(r.Job.Destination, 40),
			fmt.Sprintf("%dx%d", r.Job.Width, r.Job.Height),
			r.Duration.Round(time.Millisecond).String(),
		)
	}

	return t.String()
}

func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return "…" + string(runes[len(runes)-max+1:])
}
