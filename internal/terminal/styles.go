package terminal

import "github.com/charmbracelet/lipgloss"

var (
	markXStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	markOStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)

	cellStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center)

	cursorStyle = cellStyle.
			Background(lipgloss.Color("240"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13")).
			Bold(true)

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)
