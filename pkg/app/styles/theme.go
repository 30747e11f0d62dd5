package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary   = lipgloss.Color("#FF6B9D")
	Secondary = lipgloss.Color("#C792EA")
	Success   = lipgloss.Color("#C3E88D")
	Error     = lipgloss.Color("#F07178")
	Muted     = lipgloss.Color("#546E7A")
	White     = lipgloss.Color("#FFFFFF")
	BadgeRed  = lipgloss.Color("#E53935")

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
)

// Base styles
var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	// Muted/dimmed text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Status styles
	StatusCompleted = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Badge pill: white digits on red, rounded edge
	BadgeStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(BadgeRed).
			Bold(true).
			Padding(0, 1)

	BadgeBorderStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(BadgeRed)

	// Tab styles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(lipgloss.Color("#37474F")).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	// Focused input
	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)
)

// StatusStyle picks the style for a conversion status
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "complete", "done":
		return StatusCompleted
	case "error", "partial":
		return StatusError
	default:
		return MutedStyle
	}
}
