package ui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/speechtimer/internal/domain"
)

// writeClipboard is swapped in tests
var writeClipboard = clipboard.WriteAll

// copyHistoryCmd copies the history, grouped by bucket, to the system clipboard
func (m *Model) copyHistoryCmd() tea.Cmd {
	entries := m.stopwatch.History().Entries()
	text := historyAsText(domain.Categorize(entries))
	return func() tea.Msg {
		return historyCopiedMsg{entries: len(entries), err: writeClipboard(text)}
	}
}

// historyAsText renders the buckets as plain text, one "name: MM:SS" line
// per entry under each bucket title
func historyAsText(c domain.Categories) string {
	var b strings.Builder
	for i, band := range domain.AllBands {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(band.Title())
		b.WriteString("\n")
		for _, e := range c.Bucket(band) {
			b.WriteString("  ")
			b.WriteString(formatHistoryEntry(e))
			b.WriteString("\n")
		}
	}
	return b.String()
}
