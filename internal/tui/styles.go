package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Styles is the lipgloss palette of the whole program. Dark mode swaps it as a unit.
type Styles struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Doc         lipgloss.Style
	Header      lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Success     lipgloss.Style
	Danger      lipgloss.Style
	Card        lipgloss.Style
	Status      lipgloss.Style
}

func NewStyles(dark bool) Styles {
	fg, bg, accent, muted := lipgloss.Color("235"), lipgloss.Color("254"), lipgloss.Color("62"), lipgloss.Color("245")
	success, danger := lipgloss.Color("28"), lipgloss.Color("160")
	if dark {
		fg, bg, accent, muted = lipgloss.Color("252"), lipgloss.Color("236"), lipgloss.Color("205"), lipgloss.Color("240")
		success, danger = lipgloss.Color("42"), lipgloss.Color("203")
	}

	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Foreground(accent).
			Background(bg).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		Doc:     lipgloss.NewStyle().Margin(1, 2),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(fg),
		Muted:   lipgloss.NewStyle().Foreground(muted),
		Accent:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Success: lipgloss.NewStyle().Foreground(success).Bold(true),
		Danger:  lipgloss.NewStyle().Foreground(danger).Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(accent).Italic(true),
	}
}

func formTheme(dark bool) *huh.Theme {
	if dark {
		return huh.ThemeDracula()
	}
	return huh.ThemeBase()
}
