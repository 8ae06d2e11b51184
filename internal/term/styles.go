package term

import "charm.land/lipgloss/v2"

var (
	Green  = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2))
	Red    = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(1))
	Yellow = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3))
	Cyan   = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6))
	Dim    = lipgloss.NewStyle().Faint(true)
	Bold   = lipgloss.NewStyle().Bold(true)

	CheckMark = Green.Render("✓")
	CrossMark = Red.Render("✗")
	WarnMark  = Yellow.Render("!")
)
