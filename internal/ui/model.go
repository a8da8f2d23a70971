package ui

import (
	"fmt"
	"reflect"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-tab-picker/internal/backend"
	"github.com/atomicstack/tmux-tab-picker/internal/data/dispatcher"
	"github.com/atomicstack/tmux-tab-picker/internal/picker"
	"github.com/atomicstack/tmux-tab-picker/internal/theme"
	"github.com/atomicstack/tmux-tab-picker/internal/tmux"
	"github.com/atomicstack/tmux-tab-picker/internal/ui/command"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// ActivateFunc selects the tab at position within snapshot.
type ActivateFunc func(socketPath string, snapshot tmux.TabSnapshot, position int) error

// Config holds the options the model is built from.
type Config struct {
	SocketPath string
	Width      int
	Height     int
	ShowFooter bool
	// Settings is the raw picker configuration map.
	Settings map[string]string
}

// Model implements the Bubble Tea model for the tab picker. It is also the
// picker's Host: close and activation requests are queued while the engine
// handles an event and turned into commands once it returns.
type Model struct {
	engine     *picker.Engine
	bus        *command.Bus
	dispatcher *dispatcher.Dispatcher
	backend    *backend.Watcher
	activate   ActivateFunc

	socketPath  string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	keys        keyMap
	help        help.Model

	offset     int
	errMsg     string
	backendErr string

	closeRequested bool
	pendingTab     *int
	closeAfterTab  bool
	// activating is set while an activation command is running; keys are
	// dropped until its result arrives.
	activating bool
	quitting   bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model and loads the picker settings. A settings error
// is returned unchanged in meaning, wrapped with context.
func NewModel(cfg Config, watcher *backend.Watcher) (*Model, error) {
	m := &Model{
		bus:        command.New(),
		dispatcher: dispatcher.New(),
		backend:    watcher,
		activate:   tmux.SelectTab,
		socketPath: cfg.SocketPath,
		showFooter: cfg.ShowFooter,
		help:       help.New(),
	}
	m.engine = picker.NewEngine(m, theme.NewPainter(styles))
	if _, err := m.engine.Load(cfg.Settings); err != nil {
		return nil, fmt.Errorf("picker settings: %w", err)
	}
	m.keys = newKeyMap(m.engine.Options().QuickJump)
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	m.help.Width = m.width
	m.registerHandlers()
	return m, nil
}

// SetActivateFunc replaces the function used to select a tab.
func (m *Model) SetActivateFunc(fn ActivateFunc) {
	if fn != nil {
		m.activate = fn
	}
}

// AttachWatcher connects a backend watcher after construction. Init starts
// reading from it.
func (m *Model) AttachWatcher(w *backend.Watcher) {
	m.backend = w
}

// Engine exposes the picker engine.
func (m *Model) Engine() *picker.Engine {
	return m.engine
}

// CloseOverlay implements picker.Host.
func (m *Model) CloseOverlay() {
	m.closeRequested = true
}

// ActivateTab implements picker.Host.
func (m *Model) ActivateTab(position int) {
	pos := position
	m.pendingTab = &pos
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleActivationResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate turns host requests queued by the engine into commands.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.flushHostRequests(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.syncViewport()
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) flushHostRequests() tea.Cmd {
	closeRequested := m.closeRequested
	m.closeRequested = false
	if m.pendingTab != nil {
		position := *m.pendingTab
		m.pendingTab = nil
		m.closeAfterTab = closeRequested
		m.activating = true
		return m.activateCmd(position)
	}
	if closeRequested {
		return m.quit("cancel")
	}
	return nil
}

func (m *Model) quit(reason string) tea.Cmd {
	m.quitting = true
	if m.backend != nil {
		m.backend.Stop()
	}
	logExit(reason)
	return tea.Quit
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}
