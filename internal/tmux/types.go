package tmux

import "errors"

// ErrNoSuchTab is returned when an activation names a position the current
// snapshot does not hold.
var ErrNoSuchTab = errors.New("no such tab")

// ErrNoSession is returned when the launching session cannot be determined.
var ErrNoSession = errors.New("unable to determine current tmux session")

// Tab is one window of the current session.
type Tab struct {
	Position int
	ID       string
	Index    int
	Name     string
	Target   string
	Active   bool
}

// TabSnapshot is the ordered tab list of a session at one point in time.
type TabSnapshot struct {
	Session string
	Tabs    []Tab
}

// TabAt returns the tab at position.
func (s TabSnapshot) TabAt(position int) (Tab, bool) {
	if position < 0 || position >= len(s.Tabs) {
		return Tab{}, false
	}
	return s.Tabs[position], true
}

// Equal reports whether both snapshots describe the same tabs.
func (s TabSnapshot) Equal(other TabSnapshot) bool {
	if s.Session != other.Session || len(s.Tabs) != len(other.Tabs) {
		return false
	}
	for i := range s.Tabs {
		if s.Tabs[i] != other.Tabs[i] {
			return false
		}
	}
	return true
}
