package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-tab-picker/internal/logging"
	"github.com/atomicstack/tmux-tab-picker/internal/logging/events"
	"github.com/atomicstack/tmux-tab-picker/internal/ui/command"
)

func (m *Model) activateCmd(position int) tea.Cmd {
	snapshot := m.dispatcher.Snapshot()
	socket := m.socketPath
	activate := m.activate
	label := fmt.Sprintf("activate position %d", position)
	if tab, ok := snapshot.TabAt(position); ok {
		label = fmt.Sprintf("select %s (%s)", tab.Target, tab.Name)
	}
	return m.bus.Execute(command.Request{
		ID:    m.bus.NextID("activate"),
		Label: label,
		Run: func() error {
			return activate(socket, snapshot, position)
		},
	})
}

// handleActivationResultMsg finishes an activation. A failed activation keeps
// the picker open with the error in the status line and asks the backend for
// a fresh list.
func (m *Model) handleActivationResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.ResultMsg)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.activating = false
		m.closeAfterTab = false
		m.errMsg = result.Err.Error()
		logging.Error(result.Err)
		events.Action.Error(result.Err)
		if m.backend != nil {
			m.backend.Refresh()
		}
		return nil
	}
	m.errMsg = ""
	events.Action.Success(result.Label)
	if m.closeAfterTab {
		m.closeAfterTab = false
		return m.quit("activate")
	}
	m.activating = false
	return nil
}

func logExit(reason string) {
	events.App.Exit(reason)
}
