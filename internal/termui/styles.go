package termui

import "github.com/charmbracelet/lipgloss"

// Styles mirror the color pairs of classic terminal downloaders: a blue
// title bar, cyan chrome, inverse selection, green/yellow accents.
var (
	styleTitleBar = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	styleChrome   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleSelected = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	styleError = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("1"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleBarFill = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).Background(lipgloss.Color("2"))
)

// style applies st only when the terminal reported color capability.
func (s *Session) style(st lipgloss.Style, text string) string {
	if !s.colorOK {
		return text
	}
	return st.Render(text)
}
