package tui

import (
	"fmt"

	"nightwatch/src/provider"
)

// Item wraps a BuildRecord so it can be displayed in the recent-builds list.
// It implements bubbles/list.Item.
type Item struct {
	Record provider.BuildRecord
}

// FilterValue is the value used for fuzzy filtering.
func (i Item) FilterValue() string { return fmt.Sprintf("#%d", i.Record.RunNumber) }

// Title returns the primary text for the item (required by list.Item).
func (i Item) Title() string { return fmt.Sprintf("#%d", i.Record.RunNumber) }

// Description returns the secondary text for the item (required by list.Item).
func (i Item) Description() string { return i.Record.Conclusion }
