package ui

import "github.com/charmbracelet/lipgloss"

// Colors for the UI theme - Muted Professional Palette
var (
	ColorPrimary   = lipgloss.Color("#A78BFA") // Soft Purple
	ColorSecondary = lipgloss.Color("#22D3EE") // Bright Cyan
	ColorSuccess   = lipgloss.Color("#059669") // Emerald
	ColorWarning   = lipgloss.Color("#D97706") // Amber
	ColorError     = lipgloss.Color("#DC2626") // Red
	ColorMuted     = lipgloss.Color("#9CA3AF") // Neutral Gray
	ColorText      = lipgloss.Color("#F1F5F9") // Soft White
	ColorBorder    = lipgloss.Color("#1E293B") // Subtle Slate Border
	ColorEmergency = lipgloss.Color("#FB7185") // Rose
)

// Styles holds the shared lipgloss styles.
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	UserMsg   lipgloss.Style
	ModelMsg  lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Emergency lipgloss.Style
	Status    lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorBorder),
		TabActive: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			Padding(0, 1),
		TabIdle: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true),
		UserMsg: lipgloss.NewStyle().
			Foreground(ColorSecondary),
		ModelMsg: lipgloss.NewStyle().
			Foreground(ColorText),
		Error: lipgloss.NewStyle().
			Foreground(ColorError),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Accent: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Emergency: lipgloss.NewStyle().
			Foreground(ColorEmergency).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(ColorSuccess),
	}
}
