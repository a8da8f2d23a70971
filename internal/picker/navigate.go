package picker

// ResetSelection selects the first visible item, or clears the selection
// when nothing is visible. It reports whether the selection changed.
func (s *State) ResetSelection() bool {
	visible := s.Visible()
	if len(visible) == 0 {
		return s.clearSelection()
	}
	return s.setSelected(visible[0].Position)
}

// SelectDown moves the selection to the next visible item, wrapping to the
// first one after the last. A selection that is not visible falls back to
// the first visible item. With nothing visible the selection is unchanged.
func (s *State) SelectDown() bool {
	visible := s.Visible()
	if len(visible) == 0 {
		return false
	}
	next := visible[0].Position
	if s.hasSelected {
		for i, item := range visible {
			if item.Position != s.selected {
				continue
			}
			if i+1 < len(visible) {
				next = visible[i+1].Position
			}
			break
		}
	}
	return s.setSelected(next)
}

// SelectUp mirrors SelectDown, wrapping to the last visible item.
func (s *State) SelectUp() bool {
	visible := s.Visible()
	if len(visible) == 0 {
		return false
	}
	prev := visible[len(visible)-1].Position
	if s.hasSelected {
		for i := len(visible) - 1; i >= 0; i-- {
			if visible[i].Position != s.selected {
				continue
			}
			if i > 0 {
				prev = visible[i-1].Position
			}
			break
		}
	}
	return s.setSelected(prev)
}

// ReplaceItems installs a new authoritative item list. The selection is
// re-synced to the item the host flags active, or cleared when none is,
// regardless of any earlier manual selection.
func (s *State) ReplaceItems(items []Item) {
	s.clearSelection()
	for _, item := range items {
		if item.Active {
			s.setSelected(item.Position)
			break
		}
	}
	s.items = sortedItems(items)
}
