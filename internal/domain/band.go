package domain

import "fmt"

// Band is one of the fixed duration ranges used for both the background
// colour and the history buckets
type Band int

const (
	BandOkay Band = iota
	BandGood
	BandGreat
	BandTooMuch
)

// Band thresholds in seconds. Each is the inclusive lower bound of its band.
const (
	GoodThreshold    = 20
	GreatThreshold   = 30
	TooMuchThreshold = 40
)

// Background colours (hex)
const (
	ColorDefault = "#FFFFFF" // White - below the first threshold
	ColorGreen   = "#4CAF50" // Green - good
	ColorYellow  = "#FFEB3B" // Yellow - great
	ColorRed     = "#F44336" // Red - too much
)

// AllBands lists the bands in ascending order
var AllBands = []Band{BandOkay, BandGood, BandGreat, BandTooMuch}

// BandFor returns the band a duration in seconds falls into
func BandFor(seconds int) Band {
	switch {
	case seconds >= TooMuchThreshold:
		return BandTooMuch
	case seconds >= GreatThreshold:
		return BandGreat
	case seconds >= GoodThreshold:
		return BandGood
	default:
		return BandOkay
	}
}

// String returns the short name of the band
func (b Band) String() string {
	switch b {
	case BandOkay:
		return "okay"
	case BandGood:
		return "good"
	case BandGreat:
		return "great"
	case BandTooMuch:
		return "too_much"
	}
	return fmt.Sprintf("band(%d)", int(b))
}

// Title returns the heading used for the band's history bucket
func (b Band) Title() string {
	switch b {
	case BandOkay:
		return "Okay (0-19 seconds)"
	case BandGood:
		return "Good (20-30 seconds)"
	case BandGreat:
		return "Great (30-40 seconds)"
	case BandTooMuch:
		return "Too Much (40+ seconds)"
	}
	return b.String()
}

// Color returns the background colour of the band.
// BandOkay has no colour of its own and reports the default.
func (b Band) Color() string {
	switch b {
	case BandGood:
		return ColorGreen
	case BandGreat:
		return ColorYellow
	case BandTooMuch:
		return ColorRed
	}
	return ColorDefault
}

// ParseBand converts a band name back to a Band
func ParseBand(name string) (Band, error) {
	for _, b := range AllBands {
		if b.String() == name {
			return b, nil
		}
	}
	return BandOkay, fmt.Errorf("unknown band '%s'", name)
}

// NextBackground derives the background colour after elapsed changes.
// Below the first threshold there is no rule, so current is kept as is.
func NextBackground(current string, elapsed int) string {
	if elapsed < GoodThreshold {
		return current
	}
	return BandFor(elapsed).Color()
}

// FormatDuration renders seconds as MM:SS. Minutes are not capped at 59.
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
