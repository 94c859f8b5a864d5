package report

import "github.com/charmbracelet/lipgloss"

// Theme styles the -v summary line mpcd writes to stderr. The CLI's
// plain-text/JSON report and the -S size report on stdout are never
// styled; only diagnostic chatter on stderr uses this theme.
type Theme struct {
	Phase   lipgloss.Style
	Count   lipgloss.Style
	Warning lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultTheme is the theme used unless a caller overrides it.
var DefaultTheme = Theme{
	Phase:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	Count:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}
