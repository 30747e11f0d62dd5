package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/appassets/pkg/app/styles"
)

// BadgeCap is the largest count shown as a number
const BadgeCap = 99

// BadgeOverflowLabel is shown for any count above BadgeCap
const BadgeOverflowLabel = "99+"

// BadgeView describes what a notification badge displays. The zero value is
// a hidden badge.
type BadgeView struct {
	Visible bool
	Label   string
}

// Badge maps an optional pending count to a badge. A nil, zero or negative
// count hides the badge; counts above BadgeCap are capped to "99+".
func Badge(count *int) BadgeView {
	if count == nil || *count <= 0 {
		return BadgeView{}
	}
	if *count > BadgeCap {
		return BadgeView{Visible: true, Label: BadgeOverflowLabel}
	}
	return BadgeView{Visible: true, Label: strconv.Itoa(*count)}
}

// BadgeCount is Badge for callers holding a plain int
func BadgeCount(n int) BadgeView {
	return Badge(&n)
}

// Render draws the badge as a small rounded box, or nothing when hidden
func (b BadgeView) Render() string {
	if !b.Visible {
		return ""
	}
	return styles.BadgeBorderStyle.Render(styles.BadgeStyle.Render(b.Label))
}

// Inline draws the badge on a single line, for use inside tabs and lists
func (b BadgeView) Inline() string {
	if !b.Visible {
		return ""
	}
	return styles.BadgeStyle.Render(b.Label)
}

// WithBadge attaches the badge to the top-right edge of parent
func WithBadge(parent string, view BadgeView) string {
	if !view.Visible {
		return parent
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parent, view.Render())
}
