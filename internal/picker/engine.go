package picker

import (
	"fmt"

	"github.com/atomicstack/tmux-tab-picker/internal/logging"
	"github.com/atomicstack/tmux-tab-picker/internal/logging/events"
)

// Host receives the engine's output requests.
type Host interface {
	CloseOverlay()
	ActivateTab(position int)
}

// EventKind distinguishes the two inputs the engine reacts to.
type EventKind int

const (
	EventTabsReplaced EventKind = iota
	EventKey
)

// Event is a single externally delivered input. Items is read for
// EventTabsReplaced, Key for EventKey.
type Event struct {
	Kind  EventKind
	Items []Item
	Key   Key
}

// TabsReplaced builds a list delivery event.
func TabsReplaced(items []Item) Event {
	return Event{Kind: EventTabsReplaced, Items: items}
}

// KeyPressed builds a key event.
func KeyPressed(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// Engine owns a State and turns events into state transitions and host
// requests. It is not safe for concurrent use; callers serialize Update and
// Render.
type Engine struct {
	host    Host
	painter Painter
	state   *State
}

// NewEngine returns an engine with default options and no items. A nil
// painter renders plain text.
func NewEngine(host Host, painter Painter) *Engine {
	if painter == nil {
		painter = PlainPainter{}
	}
	return &Engine{
		host:    host,
		painter: painter,
		state:   NewState(DefaultOptions()),
	}
}

// Load resolves settings into Options and installs them. Unrecognized keys
// are logged as a warning and returned. On error the engine keeps its
// previous options.
func (e *Engine) Load(settings map[string]string) ([]Unrecognized, error) {
	opts, unknown, err := ParseOptions(settings)
	if err != nil {
		return nil, fmt.Errorf("load picker options: %w", err)
	}
	if len(unknown) > 0 {
		logging.Warn("unrecognized picker settings: %v", unknown)
		for _, u := range unknown {
			events.Config.Unrecognized(u.Key, u.Value, u.Suggestion)
		}
	}
	events.Config.Options(map[string]interface{}{
		"ignore_case":               opts.IgnoreCase,
		"quick_jump":                opts.QuickJump,
		"selection_color":           opts.SelectionColor,
		"apply_selection_accent_to": opts.SelectionAccent.String(),
		"active_tab_color":          opts.ActiveTabColor,
		"apply_tab_color_to":        opts.TabColorAccent.String(),
		"underline_active":          opts.UnderlineActive,
	})

	next := NewState(opts)
	next.filter = e.state.filter
	if items := e.state.items; len(items) > 0 {
		next.ReplaceItems(items)
	}
	e.state = next
	return unknown, nil
}

// Update applies ev and reports whether the frame needs to be redrawn.
func (e *Engine) Update(ev Event) bool {
	switch ev.Kind {
	case EventTabsReplaced:
		e.state.ReplaceItems(ev.Items)
		pos, ok := e.state.Selected()
		events.Picker.Replace(len(ev.Items), pos, ok)
		return true
	case EventKey:
		return e.HandleKey(ev.Key)
	}
	return false
}

// HandleKey interprets k and applies the resulting action.
func (e *Engine) HandleKey(k Key) bool {
	action := Interpret(k, e.state.options.QuickJump)
	switch action.Kind {
	case ActionCancel:
		reason := events.ReasonEscape
		if k.Code == KeyRune {
			reason = events.ReasonCtrlC
		}
		events.Picker.Cancel(reason)
		e.host.CloseOverlay()
		return false
	case ActionSelectDown:
		e.state.SelectDown()
		pos, ok := e.state.Selected()
		events.Picker.Select("down", pos, ok)
		return true
	case ActionSelectUp:
		e.state.SelectUp()
		pos, ok := e.state.Selected()
		events.Picker.Select("up", pos, ok)
		return true
	case ActionConfirm:
		pos, ok := e.state.Selected()
		if !ok {
			return false
		}
		events.Picker.Confirm(pos)
		e.activate(pos)
		return false
	case ActionQuickJump:
		events.Picker.QuickJump(action.Position)
		e.activate(action.Position)
		return false
	case ActionDeleteRune:
		e.state.DeleteFilterRune()
		events.Filter.Backspace(e.state.filter)
		return true
	case ActionAppendRune:
		e.state.AppendFilter(action.Rune)
		events.Filter.Append(e.state.filter)
		return true
	}
	return false
}

func (e *Engine) activate(position int) {
	e.host.ActivateTab(position)
	e.host.CloseOverlay()
}

// Render formats the current state. The viewport dimensions are accepted for
// the host's benefit; the frame is never truncated here.
func (e *Engine) Render(rows, cols int) Frame {
	return Render(e.state, e.painter)
}

// State exposes the engine's state for reading.
func (e *Engine) State() *State {
	return e.state
}

// Options returns the options currently in effect.
func (e *Engine) Options() Options {
	return e.state.options
}
