package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Text drawn on top of the band background. The background is always light
// enough for black text, including the default white.
const (
	ColorInk      Color = "#000000"
	ColorInkMuted Color = "#424242"
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Button colors, after the original control palette
const (
	ColorButtonDisabled Color = "#9E9E9E"
	ColorButtonHistory  Color = "#9C27B0"
	ColorButtonReset    Color = "#6B7280"
	ColorButtonStart    Color = "#3B82F6"
	ColorButtonStop     Color = "#EF4444"
	ColorButtonToggle   Color = "#F97316"
)

// History bucket accents and entry backgrounds
const (
	ColorBucketGood      Color = "#16A34A"
	ColorBucketGoodBg    Color = "#DCFCE7"
	ColorBucketGreat     Color = "#CA8A04"
	ColorBucketGreatBg   Color = "#FEF9C3"
	ColorBucketOkay      Color = "#000000"
	ColorBucketOkayBg    Color = "#F3F4F6"
	ColorBucketTooMuch   Color = "#DC2626"
	ColorBucketTooMuchBg Color = "#FEE2E2"
	ColorPanelBorder     Color = "#D1D5DB"
	ColorPanelBg         Color = "#FFFFFF"
)
