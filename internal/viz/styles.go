package viz

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(24)
	ValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	Subtle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// legend entries follow the asciigraph series palette
	SeriesStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	}
)
