package screens

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/appassets/pkg/app/components"
	"github.com/kerbaras/appassets/pkg/app/styles"
)

// PreviewScreen hosts notification badges on a row of tabs so the badge
// rules can be tried interactively.
type PreviewScreen struct {
	input  textinput.Model
	tabs   []string
	counts []*int
	active int
	width  int
}

func NewPreviewScreen(initial *int) *PreviewScreen {
	ti := textinput.New()
	ti.Placeholder = "no count"
	ti.Prompt = "count: "
	ti.Focus()
	ti.CharLimit = 6
	ti.Width = 10

	s := &PreviewScreen{
		input:  ti,
		tabs:   []string{"Inbox", "Alerts"},
		counts: make([]*int, 2),
	}
	if initial != nil {
		n := *initial
		s.counts[0] = &n
	}
	s.syncInput()
	return s
}

func (s *PreviewScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *PreviewScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return s, tea.Quit
		case "tab":
			s.active = (s.active + 1) % len(s.tabs)
			s.syncInput()
			return s, nil
		case "up", "+":
			s.step(1)
			return s, nil
		case "down", "-":
			s.step(-1)
			return s, nil
		}

		// Only digits reach the input
		if msg.Type == tea.KeyRunes && !onlyDigits(msg.Runes) {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.counts[s.active] = parseCount(s.input.Value())
	return s, cmd
}

func (s *PreviewScreen) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Badge preview"))
	b.WriteString("\n")
	b.WriteString(s.renderTabs())
	b.WriteString("\n\n")

	parent := styles.FocusedInputStyle.Render(s.tabs[s.active])
	b.WriteString(components.WithBadge(parent, components.Badge(s.counts[s.active])))
	b.WriteString("\n\n")

	b.WriteString(s.input.View())
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("digits: set count • +/-: step • tab: switch • q: quit"))

	return b.String()
}

// Count returns the count of the active tab, nil when none is set
func (s *PreviewScreen) Count() *int {
	return s.counts[s.active]
}

func (s *PreviewScreen) renderTabs() string {
	rendered := make([]string, len(s.tabs))
	for i, tab := range s.tabs {
		label := tab
		if badge := components.Badge(s.counts[i]).Inline(); badge != "" {
			label += " " + badge
		}

		if i == s.active {
			rendered[i] = styles.ActiveTabStyle.Render(label)
		} else {
			rendered[i] = styles.InactiveTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (s *PreviewScreen) step(delta int) {
	n := 0
	if c := s.counts[s.active]; c != nil {
		n = *c
	}
	n = max(n+delta, 0)
	s.counts[s.active] = &n
	s.syncInput()
}

// syncInput shows the active tab's count in the input
func (s *PreviewScreen) syncInput() {
	if c := s.counts[s.active]; c != nil {
		s.input.SetValue(strconv.Itoa(*c))
	} else {
		s.input.SetValue("")
	}
	s.input.CursorEnd()
}

func parseCount(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}

func onlyDigits(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
