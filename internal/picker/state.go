// Package picker implements the tab picker engine: filtering a list of tabs by
// typed text, moving a single selection through the visible subset, and
// formatting the result into display rows.
//
// Selection is keyed on an item's absolute position rather than its index in
// the filtered view, so changing the filter never has to translate indices
// between differently sized subsets.
package picker

import "sort"

// Item is one selectable tab. Position is its zero-based index in the
// authoritative list and doubles as its identity and activation target.
type Item struct {
	Position int
	Name     string
	Active   bool
}

// State is the engine's mutable session state.
type State struct {
	items       []Item
	filter      string
	selected    int
	hasSelected bool
	options     Options
}

// NewState returns an empty state with nothing selected.
func NewState(opts Options) *State {
	return &State{options: opts}
}

// Items returns a copy of the current items in ascending position order.
func (s *State) Items() []Item {
	return CloneItems(s.items)
}

// Filter returns the current filter text.
func (s *State) Filter() string {
	return s.filter
}

// Options returns the configuration the state was created with.
func (s *State) Options() Options {
	return s.options
}

// Selected reports the selected position, if any. The position is not
// guaranteed to be visible under the current filter.
func (s *State) Selected() (int, bool) {
	return s.selected, s.hasSelected
}

// IsSelected reports whether position is the selected position.
func (s *State) IsSelected(position int) bool {
	return s.hasSelected && s.selected == position
}

// Visible returns the items matching the current filter, in position order.
func (s *State) Visible() []Item {
	return VisibleItems(s.items, s.filter, s.options.IgnoreCase)
}

// AppendFilter appends r to the filter text and resets the selection.
func (s *State) AppendFilter(r rune) {
	s.filter += string(r)
	s.ResetSelection()
}

// DeleteFilterRune removes the last rune of the filter text, if any, and
// resets the selection either way. It reports whether the text changed.
func (s *State) DeleteFilterRune() bool {
	runes := []rune(s.filter)
	changed := len(runes) > 0
	if changed {
		s.filter = string(runes[:len(runes)-1])
	}
	s.ResetSelection()
	return changed
}

func (s *State) setSelected(position int) bool {
	changed := !s.hasSelected || s.selected != position
	s.selected = position
	s.hasSelected = true
	return changed
}

func (s *State) clearSelection() bool {
	changed := s.hasSelected
	s.selected = 0
	s.hasSelected = false
	return changed
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

func sortedItems(items []Item) []Item {
	dup := CloneItems(items)
	sort.SliceStable(dup, func(i, j int) bool { return dup[i].Position < dup[j].Position })
	return dup
}
