package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/tmux-tab-picker/internal/backend"
	"github.com/atomicstack/tmux-tab-picker/internal/logging"
	"github.com/atomicstack/tmux-tab-picker/internal/picker"
	"github.com/atomicstack/tmux-tab-picker/internal/tmux"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "ui-test")
	if err != nil {
		panic(err)
	}
	logging.Configure(filepath.Join(dir, "ui.log"))
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

type activation struct {
	socket   string
	target   string
	position int
}

type activationRecorder struct {
	calls []activation
	err   error
}

func (r *activationRecorder) activate(socket string, snapshot tmux.TabSnapshot, position int) error {
	target := ""
	if tab, ok := snapshot.TabAt(position); ok {
		target = tab.Target
	}
	r.calls = append(r.calls, activation{socket: socket, target: target, position: position})
	return r.err
}

func tabSnapshot(active int, names ...string) tmux.TabSnapshot {
	snap := tmux.TabSnapshot{Session: "dev"}
	for i, name := range names {
		snap.Tabs = append(snap.Tabs, tmux.Tab{
			Position: i,
			ID:       fmt.Sprintf("@%d", i+1),
			Index:    i,
			Name:     name,
			Target:   fmt.Sprintf("dev:%d", i),
			Active:   i == active,
		})
	}
	return snap
}

func newTestHarness(t *testing.T, cfg Config) (*Harness, *activationRecorder) {
	t.Helper()
	if cfg.SocketPath == "" {
		cfg.SocketPath = "sock"
	}
	m, err := NewModel(cfg, nil)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	rec := &activationRecorder{}
	m.SetActivateFunc(rec.activate)
	return NewHarness(m), rec
}

func deliver(h *Harness, snap tmux.TabSnapshot) {
	h.Send(backendEventMsg{event: backend.Event{Snapshot: snap}})
}

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

func TestModelRendersDeliveredTabs(t *testing.T) {
	h, _ := newTestHarness(t, Config{})
	deliver(h, tabSnapshot(0, "editor", "logs", "build"))

	want := "> (filter)\n1 - editor\n2 - logs\n3 - build"
	if got := plainView(h); got != want {
		t.Fatalf("unexpected view:\n%s\nwant:\n%s", got, want)
	}
	pos, ok := h.Model().Engine().State().Selected()
	if !ok || pos != 0 {
		t.Fatalf("expected active tab to be selected, got %d (%v)", pos, ok)
	}
}

func TestModelFilterAndConfirm(t *testing.T) {
	h, rec := newTestHarness(t, Config{})
	deliver(h, tabSnapshot(0, "editor", "logs", "build"))

	h.Type("l")
	want := "> l\n2 - logs\n3 - build"
	if got := plainView(h); got != want {
		t.Fatalf("unexpected filtered view:\n%s\nwant:\n%s", got, want)
	}
	h.Press(tea.KeyDown)
	h.Press(tea.KeyEnter)

	if len(rec.calls) != 1 {
		t.Fatalf("expected one activation, got %#v", rec.calls)
	}
	if got := rec.calls[0]; got.target != "dev:2" || got.position != 2 || got.socket != "sock" {
		t.Fatalf("unexpected activation %#v", got)
	}
	if !h.Quit() {
		t.Fatalf("expected picker to quit after activation")
	}
	if h.View() != "" {
		t.Fatalf("expected empty view after quit")
	}
}

func TestModelEscapeQuitsWithoutActivation(t *testing.T) {
	for _, keyType := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		h, rec := newTestHarness(t, Config{})
		deliver(h, tabSnapshot(1, "editor", "logs"))
		h.Press(keyType)
		if !h.Quit() {
			t.Fatalf("%v: expected quit", keyType)
		}
		if len(rec.calls) != 0 {
			t.Fatalf("%v: expected no activation, got %#v", keyType, rec.calls)
		}
	}
}

func TestModelQuickJump(t *testing.T) {
	h, rec := newTestHarness(t, Config{Settings: map[string]string{picker.KeyQuickJump: "true"}})
	deliver(h, tabSnapshot(0, "editor", "logs", "build"))

	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2x")})
	if len(rec.calls) != 1 || rec.calls[0].position != 2 {
		t.Fatalf("expected jump to position 2, got %#v", rec.calls)
	}
	if h.Model().Engine().State().Filter() != "" {
		t.Fatalf("expected runes after the jump to be dropped")
	}
	if !h.Quit() {
		t.Fatalf("expected quit after quick jump")
	}
}

func TestModelQuickJumpToMissingTabShowsError(t *testing.T) {
	m, err := NewModel(Config{SocketPath: "sock", Settings: map[string]string{picker.KeyQuickJump: "true"}}, nil)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	h := NewHarness(m)
	deliver(h, tabSnapshot(0, "editor", "logs"))

	h.Type("7")
	if h.Quit() {
		t.Fatalf("expected picker to stay open after failed activation")
	}
	view := plainView(h)
	if !strings.Contains(view, tmux.ErrNoSuchTab.Error()) {
		t.Fatalf("expected status line with error, got:\n%s", view)
	}

	h.Press(tea.KeyEsc)
	if !h.Quit() {
		t.Fatalf("expected escape to close after failed activation")
	}
}

func TestModelActivationErrorKeepsPickerOpen(t *testing.T) {
	h, rec := newTestHarness(t, Config{})
	rec.err = errors.New("select-window failed")
	deliver(h, tabSnapshot(0, "editor"))
	h.Press(tea.KeyEnter)
	if h.Quit() {
		t.Fatalf("expected picker to stay open")
	}
	if !strings.Contains(plainView(h), "select-window failed") {
		t.Fatalf("expected error in view, got:\n%s", plainView(h))
	}

	rec.err = nil
	h.Press(tea.KeyEnter)
	if !h.Quit() {
		t.Fatalf("expected quit after successful retry")
	}
}

func TestModelConfirmWithoutSelectionDoesNothing(t *testing.T) {
	h, rec := newTestHarness(t, Config{})
	deliver(h, tabSnapshot(0, "editor"))
	h.Type("zz")
	h.Press(tea.KeyEnter)
	if h.Quit() || len(rec.calls) != 0 {
		t.Fatalf("expected no-op confirm, quit=%v calls=%#v", h.Quit(), rec.calls)
	}
	if got := plainView(h); got != "> zz" {
		t.Fatalf("unexpected view %q", got)
	}
}

func TestModelBackendErrorShownAndCleared(t *testing.T) {
	h, _ := newTestHarness(t, Config{})
	h.Send(backendEventMsg{event: backend.Event{Err: errors.New("no server running")}})
	if !strings.Contains(plainView(h), "no server running") {
		t.Fatalf("expected backend error in view, got:\n%s", plainView(h))
	}
	deliver(h, tabSnapshot(0, "editor"))
	if got := plainView(h); got != "> (filter)\n1 - editor" {
		t.Fatalf("expected error to clear, got:\n%s", got)
	}
}

func TestModelReplacementResyncsSelection(t *testing.T) {
	h, _ := newTestHarness(t, Config{})
	deliver(h, tabSnapshot(0, "editor", "logs", "build"))
	h.Press(tea.KeyDown)
	deliver(h, tabSnapshot(0, "editor", "logs", "build"))
	if pos, _ := h.Model().Engine().State().Selected(); pos != 1 {
		t.Fatalf("identical snapshot must not reset selection, got %d", pos)
	}
	deliver(h, tabSnapshot(2, "editor", "logs", "build"))
	if pos, _ := h.Model().Engine().State().Selected(); pos != 2 {
		t.Fatalf("expected selection to follow active tab, got %d", pos)
	}
}

func TestNewModelRejectsInvalidSettings(t *testing.T) {
	_, err := NewModel(Config{Settings: map[string]string{picker.KeyIgnoreCase: "sometimes"}}, nil)
	if !errors.Is(err, picker.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestNewModelAcceptsUnknownSettings(t *testing.T) {
	m, err := NewModel(Config{Settings: map[string]string{"bogus_key": "x"}}, nil)
	if err != nil || m == nil {
		t.Fatalf("expected unknown keys to be tolerated, got %v", err)
	}
}

func TestModelIgnoresKeysWhileActivationRuns(t *testing.T) {
	h, rec := newTestHarness(t, Config{})
	deliver(h, tabSnapshot(0, "editor", "logs", "build"))
	m := h.Model()

	_, first := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if first == nil {
		t.Fatalf("expected an activation command")
	}
	for _, keyType := range []tea.KeyType{tea.KeyDown, tea.KeyEnter} {
		if _, cmd := m.Update(tea.KeyMsg{Type: keyType}); cmd != nil {
			t.Fatalf("%v: expected no command while activation runs", keyType)
		}
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if pos, _ := m.Engine().State().Selected(); pos != 0 {
		t.Fatalf("selection moved during activation: %d", pos)
	}
	if got := m.Engine().State().Filter(); got != "" {
		t.Fatalf("filter changed during activation: %q", got)
	}

	h.processCmd(first)
	if len(rec.calls) != 1 || rec.calls[0].target != "dev:0" {
		t.Fatalf("expected a single activation of dev:0, got %#v", rec.calls)
	}
	if !h.Quit() {
		t.Fatalf("expected quit after activation")
	}
}

func TestModelAcceptsKeysAfterFailedActivation(t *testing.T) {
	h, rec := newTestHarness(t, Config{})
	rec.err = errors.New("select-window failed")
	deliver(h, tabSnapshot(0, "editor", "logs"))
	h.Press(tea.KeyEnter)
	h.Press(tea.KeyDown)
	if pos, _ := h.Model().Engine().State().Selected(); pos != 1 {
		t.Fatalf("expected keys to work again after failure, selection %d", pos)
	}
}
