package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// listRenderingOverhead accounts for padding added by bubbles/list and
	// the panel border around the recent-builds table.
	listRenderingOverhead = 10

	conclusionWidth = 10
	dateWidth       = 12
)

// Delegate renders build records as table rows.
type Delegate struct {
	RunWidth int
	styles   *StyleConfig
}

// NewDelegate creates a new builds table delegate with default styles
func NewDelegate() Delegate {
	return Delegate{
		RunWidth: 2, // default minimum
		styles:   DefaultStyles(),
	}
}

// SetColumnWidths sets the width of the run-number column from the largest
// run number on display.
func (d *Delegate) SetColumnWidths(maxRunNumber int) {
	d.RunWidth = len(fmt.Sprintf("%d", maxRunNumber))
	if d.RunWidth < 2 {
		d.RunWidth = 2
	}
}

// Height returns the height of a list item
func (d Delegate) Height() int {
	return 1
}

// Spacing returns spacing between items
func (d Delegate) Spacing() int {
	return 0
}

// Update handles item updates
func (d Delegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a list item
func (d Delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(Item)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	icon := "✓"
	iconColor := d.styles.SuccessGreen
	if entry.Record.Failed() {
		icon = "✗"
		iconColor = d.styles.FailureRed
	}

	runFmt := fmt.Sprintf("#%%%dd", d.RunWidth)
	runCol := fmt.Sprintf(runFmt, entry.Record.RunNumber)
	conclusionCol := TruncateAndPad(entry.Record.Conclusion, conclusionWidth, false)
	dateCol := TruncateAndPad(entry.Record.Timestamp.Format("Jan 02 15:04"), dateWidth, false)

	// Remaining width goes to the run URL
	fixedWidth := d.RunWidth + 1 + 1 + conclusionWidth + dateWidth + 12
	availableWidth := m.Width() - fixedWidth - listRenderingOverhead

	var urlCol string
	if availableWidth > 0 {
		urlCol = TruncateAndPad(entry.Record.URL, availableWidth, true)
	}

	iconStyled := lipgloss.NewStyle().Foreground(iconColor).Render(icon)

	line := fmt.Sprintf("%s │ %s %s │ %s │ %s",
		runCol, iconStyled, conclusionCol, dateCol, urlCol)

	style := lipgloss.NewStyle().Foreground(d.styles.TextSecondary)
	if isSelected {
		style = style.Bold(true).Foreground(d.styles.PrimaryBlue).Background(d.styles.SelectedColor)
	}

	fmt.Fprint(w, style.Render(line))
}
