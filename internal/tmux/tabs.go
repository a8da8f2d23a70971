package tmux

import (
	"fmt"
	"sort"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// FetchTabs lists the windows of the current session ordered by window
// index. Positions are assigned 0..n-1 in that order.
func FetchTabs(socketPath string) (TabSnapshot, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return TabSnapshot{}, err
	}
	session := currentSessionName(client)
	if session == "" {
		return TabSnapshot{}, ErrNoSession
	}
	windows, err := client.ListAllWindows()
	if err != nil {
		discard(client)
		return TabSnapshot{}, fmt.Errorf("list windows: %w", err)
	}
	return TabSnapshot{Session: session, Tabs: tabsForSession(windows, session)}, nil
}

func tabsForSession(windows []*gotmux.Window, session string) []Tab {
	seen := make(map[string]struct{}, len(windows))
	tabs := make([]Tab, 0, len(windows))
	for _, w := range windows {
		if w == nil || !inSession(w, session) {
			continue
		}
		if _, dup := seen[w.Id]; dup {
			continue
		}
		seen[w.Id] = struct{}{}
		tabs = append(tabs, Tab{
			ID:     w.Id,
			Index:  w.Index,
			Name:   w.Name,
			Target: fmt.Sprintf("%s:%d", session, w.Index),
			Active: w.Active,
		})
	}
	sort.SliceStable(tabs, func(i, j int) bool { return tabs[i].Index < tabs[j].Index })
	for i := range tabs {
		tabs[i].Position = i
	}
	return tabs
}

func inSession(w *gotmux.Window, session string) bool {
	if owner := strings.TrimSpace(w.Session); owner != "" {
		return owner == session
	}
	for _, name := range w.ActiveSessionsList {
		if name == session {
			return true
		}
	}
	for _, name := range w.LinkedSessionsList {
		if name == session {
			return true
		}
	}
	return false
}

// SelectTab activates the tab at position in snapshot.
func SelectTab(socketPath string, snapshot TabSnapshot, position int) error {
	tab, ok := snapshot.TabAt(position)
	if !ok {
		return fmt.Errorf("%w: position %d of %d", ErrNoSuchTab, position, len(snapshot.Tabs))
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	if err := client.SelectWindow(tab.Target); err != nil {
		discard(client)
		return fmt.Errorf("failed to select window %s: %w", tab.Target, err)
	}
	return nil
}
