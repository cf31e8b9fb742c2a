package cmd

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(22)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// row renders a label/value pair for the demo output
func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
