package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-tab-picker/internal/logging/events"
)

// Request encapsulates a host action to run off the event loop.
type Request struct {
	ID    string
	Label string
	Run   func() error
}

// ResultMsg reports the outcome of a Request.
type ResultMsg struct {
	ID    string
	Label string
	Err   error
}

// Bus coordinates the execution of host actions.
type Bus struct {
	seq int
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// NextID returns a fresh request identifier with the given prefix.
func (b *Bus) NextID(prefix string) string {
	b.seq++
	return fmt.Sprintf("%s-%d", prefix, b.seq)
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := ResultMsg{ID: req.ID, Label: req.Label, Err: req.Run()}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
