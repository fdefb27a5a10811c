package tui

import (
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	strengthStyles = map[generator.Strength]lipgloss.Style{
		generator.StrengthWeak:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		generator.StrengthMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		generator.StrengthStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

func renderStrength(s generator.Strength) string {
	style, ok := strengthStyles[s]
	if !ok {
		return ""
	}
	return style.Render(s.String())
}
