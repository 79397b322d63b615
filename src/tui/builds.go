package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"nightwatch/src/provider"
)

// BuildsView manages the scrollable list of recent builds.
type BuildsView struct {
	list     list.Model
	delegate *Delegate
}

// NewBuildsView creates a new recent-builds list view
func NewBuildsView() BuildsView {
	delegate := NewDelegate()
	l := list.New([]list.Item{}, &delegate, 0, 0)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return BuildsView{
		list:     l,
		delegate: &delegate,
	}
}

// Update handles list updates
func (v BuildsView) Update(msg tea.Msg) (BuildsView, tea.Cmd) {
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// SetSize sets the list dimensions
func (v *BuildsView) SetSize(width, height int) {
	v.list.SetSize(width, height)
}

// SetRecords replaces the displayed builds. Records are expected newest first.
func (v *BuildsView) SetRecords(records []provider.BuildRecord) {
	maxRun := 0
	for _, rec := range records {
		if rec.RunNumber > maxRun {
			maxRun = rec.RunNumber
		}
	}
	v.delegate.SetColumnWidths(maxRun)

	listItems := make([]list.Item, len(records))
	for i, rec := range records {
		listItems[i] = Item{Record: rec}
	}
	v.list.SetItems(listItems)
}

// Render returns the string representation of the view
func (v BuildsView) Render() string {
	return v.list.View()
}
