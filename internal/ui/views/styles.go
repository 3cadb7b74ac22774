package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Prompt        lipgloss.Style
	Count         lipgloss.Style
	CardName      lipgloss.Style
	Premium       lipgloss.Style
	Labels        lipgloss.Style
	Badge         lipgloss.Style
	AlphaActive   lipgloss.Style
	AlphaCursor   lipgloss.Style
	PageActive    lipgloss.Style
	PageDisabled  lipgloss.Style
	Section       lipgloss.Style
	FieldLabel    lipgloss.Style
	Link          lipgloss.Style
	LinkSelected  lipgloss.Style
	PanelBox      lipgloss.Style
	HelpBox       lipgloss.Style
	Checked       lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Count:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		CardName:    lipgloss.NewStyle().Bold(true),
		Premium: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 1),
		Labels: lipgloss.NewStyle().Foreground(lipgloss.Color("109")),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		AlphaActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Underline(true),
		AlphaCursor:  lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		PageActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")).Bold(true),
		PageDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		FieldLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10),
		Link:         lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		LinkSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Background(lipgloss.Color("238")).Bold(true),
		PanelBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		Checked:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
