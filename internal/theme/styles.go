package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/speechtimer/internal/domain"
)

// Timer screen styles
var (
	ScreenTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorInk).
				MarginBottom(1)

	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInk).
			Padding(1, 4).
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorInk)

	ClockHiddenStyle = lipgloss.NewStyle().
				Foreground(ColorInkMuted).
				Italic(true).
				Padding(2, 4)

	SpeakerLabelStyle = lipgloss.NewStyle().
				Foreground(ColorInkMuted)

	SpeakerInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPanelBorder).
				Padding(0, 1).
				Width(40)

	SpeakerInputLockedStyle = SpeakerInputStyle.
				BorderForeground(ColorButtonDisabled).
				Foreground(ColorInkMuted)

	AttributionStyle = lipgloss.NewStyle().
				Foreground(ColorInkMuted).
				Bold(true).
				MarginTop(1)
)

// Button styles
var (
	buttonBase = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2).
			MarginRight(1)

	ButtonDisabledStyle = buttonBase.
				Background(ColorButtonDisabled).
				Faint(true)
)

// OnBand draws s over the band colour, margins and border included
func OnBand(s lipgloss.Style, bg lipgloss.TerminalColor) lipgloss.Style {
	return s.Background(bg).MarginBackground(bg).BorderBackground(bg)
}

// ButtonStyle returns the style of an enabled button with the given color
func ButtonStyle(color Color) lipgloss.Style {
	return buttonBase.Background(color)
}

// History panel styles
var (
	HistoryPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPanelBorder).
				Background(ColorPanelBg).
				Foreground(ColorInk).
				Padding(0, 1)

	HistoryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorInk).
				MarginBottom(1)

	HistoryEmptyStyle = lipgloss.NewStyle().
				Foreground(ColorInkMuted).
				Italic(true)

	HistoryFocusMarkStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)
)

// BucketTitleStyle returns the heading style of a history bucket
func BucketTitleStyle(band domain.Band) lipgloss.Style {
	accent, _ := bucketColors(band)
	return lipgloss.NewStyle().Bold(true).Foreground(accent)
}

// BucketEntryStyle returns the style of one entry in a history bucket
func BucketEntryStyle(band domain.Band) lipgloss.Style {
	_, bg := bucketColors(band)
	return lipgloss.NewStyle().
		Foreground(ColorInk).
		Background(bg).
		Padding(0, 1)
}

func bucketColors(band domain.Band) (Color, Color) {
	switch band {
	case domain.BandGood:
		return ColorBucketGood, ColorBucketGoodBg
	case domain.BandGreat:
		return ColorBucketGreat, ColorBucketGreatBg
	case domain.BandTooMuch:
		return ColorBucketTooMuch, ColorBucketTooMuchBg
	}
	return ColorBucketOkay, ColorBucketOkayBg
}

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
