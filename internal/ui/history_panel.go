package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/speechtimer/internal/domain"
	"github.com/renato0307/speechtimer/internal/theme"
)

const (
	bucketHeight       = 4  // Visible entries per bucket before it scrolls
	defaultPanelWidth  = 48 // Used until the first WindowSizeMsg
	historyPanelChrome = 4  // Border and padding around the bucket viewports
)

// HistoryPanel renders the history split into one scrollable viewport per
// band. The categorization is recomputed only when the history version moves.
type HistoryPanel struct {
	buckets    []viewport.Model
	categories domain.Categories
	focused    int
	primed     bool
	version    uint64
	width      int
}

// NewHistoryPanel creates an empty history panel
func NewHistoryPanel() *HistoryPanel {
	p := &HistoryPanel{
		buckets: make([]viewport.Model, len(domain.AllBands)),
		width:   defaultPanelWidth,
	}
	for i := range p.buckets {
		p.buckets[i] = viewport.New(p.innerWidth(), bucketHeight)
	}
	p.render()
	return p
}

// Refresh re-derives the buckets if the history changed since the last call
func (p *HistoryPanel) Refresh(history *domain.History) {
	if p.primed && history.Version() == p.version {
		return
	}
	p.categories = domain.Categorize(history.Entries())
	p.version = history.Version()
	p.primed = true
	p.render()
}

// Categories returns the categorization currently displayed
func (p *HistoryPanel) Categories() domain.Categories {
	return p.categories
}

// SetWidth resizes the panel to the available terminal width
func (p *HistoryPanel) SetWidth(width int) {
	p.width = min(max(width-2, 20), 80)
	for i := range p.buckets {
		p.buckets[i].Width = p.innerWidth()
	}
	p.render()
}

// Focused returns the band whose bucket receives scroll keys
func (p *HistoryPanel) Focused() domain.Band {
	return domain.AllBands[p.focused]
}

// FocusNext moves scroll focus to the next bucket, wrapping around
func (p *HistoryPanel) FocusNext() {
	p.focused = (p.focused + 1) % len(p.buckets)
}

// ScrollUp scrolls the focused bucket up by one entry
func (p *HistoryPanel) ScrollUp() {
	vp := &p.buckets[p.focused]
	vp.SetYOffset(vp.YOffset - 1)
}

// ScrollDown scrolls the focused bucket down by one entry
func (p *HistoryPanel) ScrollDown() {
	vp := &p.buckets[p.focused]
	vp.SetYOffset(vp.YOffset + 1)
}

// ScrollOffset returns how far a bucket is scrolled
func (p *HistoryPanel) ScrollOffset(band domain.Band) int {
	return p.buckets[int(band)].YOffset
}

// View renders the panel
func (p *HistoryPanel) View() string {
	var sections []string
	sections = append(sections, theme.HistoryTitleStyle.Render("History"))

	for i, band := range domain.AllBands {
		title := theme.BucketTitleStyle(band).Render(band.Title())
		if i == p.focused {
			title = theme.HistoryFocusMarkStyle.Render("▸ ") + title
		} else {
			title = "  " + title
		}
		sections = append(sections, title, p.buckets[i].View(), "")
	}

	return theme.HistoryPanelStyle.
		Width(p.width).
		Render(strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, sections...), "\n"))
}

// render writes the current categories into the bucket viewports
func (p *HistoryPanel) render() {
	for i, band := range domain.AllBands {
		p.buckets[i].SetContent(renderBucket(band, p.categories.Bucket(band), p.innerWidth()))
	}
}

func (p *HistoryPanel) innerWidth() int {
	return max(p.width-historyPanelChrome, 10)
}

// renderBucket renders the entries of one bucket as "name: MM:SS" lines
func renderBucket(band domain.Band, entries []domain.HistoryEntry, width int) string {
	if len(entries) == 0 {
		return theme.HistoryEmptyStyle.Render("no speakers yet")
	}

	style := theme.BucketEntryStyle(band).Width(width)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, style.Render(formatHistoryEntry(e)))
	}
	return strings.Join(lines, "\n")
}

// formatHistoryEntry renders a history entry as "name: MM:SS"
func formatHistoryEntry(e domain.HistoryEntry) string {
	return e.Name + ": " + domain.FormatDuration(e.Duration)
}
