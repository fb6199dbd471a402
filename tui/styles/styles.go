package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#B45309") // Amber, the game's parchment accent
	AccentColor  = lipgloss.Color("#F59E0B")

	GainColor    = lipgloss.Color("#10B981")
	LossColor    = lipgloss.Color("#EF4444")
	EmbargoColor = lipgloss.Color("#DC2626")
	GoldColor    = lipgloss.Color("#FBBF24")

	BackgroundColor  = lipgloss.Color("#1F2937")
	BorderColor      = lipgloss.Color("#374151")
	FocusBorderColor = lipgloss.Color("#B45309")

	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Screen and section styles
var (
	ScreenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextSecondaryColor)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(lipgloss.Color("#374151"))

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)
)

// Text styles
var (
	GainStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(GainColor)

	LossStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(LossColor)

	GoldStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(GoldColor)

	EmbargoBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(EmbargoColor).
				Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(LossColor)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(GainColor)
)

// Input styles
var (
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	QuantityStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.NormalBorder()).
			BorderForeground(FocusBorderColor).
			Padding(0, 2)
)

// Dialog styles
var (
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(AccentColor).
			Padding(1, 2)

	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(AccentColor)
)

// Status bar
var StatusBarStyle = lipgloss.NewStyle().
	Background(BackgroundColor).
	Foreground(TextSecondaryColor).
	Padding(0, 1)

// RenderHelp renders one key binding for the status bar.
func RenderHelp(key, desc string) string {
	return HelpKeyStyle.Render(key) + HelpDescStyle.Render(" "+desc)
}

// FormatSigned renders a signed resource delta, styled by sign.
func FormatSigned(n int64) string {
	if n > 0 {
		return GainStyle.Render(fmt.Sprintf("+%d", n))
	}
	if n < 0 {
		return LossStyle.Render(fmt.Sprintf("%d", n))
	}
	return RowStyle.Render("0")
}
