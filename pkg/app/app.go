package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/appassets/pkg/app/screens"
)

type App struct {
	count *int
}

// NewApp creates the badge preview app, starting from count (nil for none)
func NewApp(count *int) *App {
	return &App{count: count}
}

func (a *App) Run() error {
	model := screens.NewPreviewScreen(a.count)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
