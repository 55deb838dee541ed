package console

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds every style the console renders with
type Styles struct {
	Title     lipgloss.Style
	Dealer    lipgloss.Style
	Player    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Win       lipgloss.Style
	Loss      lipgloss.Style
	Push      lipgloss.Style
	Prompt    lipgloss.Style
	Info      lipgloss.Style
}

// NewStyles builds styles bound to renderer
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E7D32")).
			Padding(0, 1).
			Bold(true),
		Dealer: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Player: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Loss: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Push: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
