package events

import "github.com/atomicstack/tmux-tab-picker/internal/logging"

type PickerTracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type cancelReason string

const (
	ReasonEscape cancelReason = "escape"
	ReasonCtrlC  cancelReason = "ctrl+c"
)

var (
	Picker  = PickerTracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (PickerTracer) Select(direction string, position int, ok bool) {
	logging.Trace("picker.select", map[string]interface{}{
		"direction": direction,
		"position":  position,
		"selected":  ok,
	})
}

func (PickerTracer) Confirm(position int) {
	logging.Trace("picker.confirm", map[string]interface{}{"position": position})
}

func (PickerTracer) QuickJump(position int) {
	logging.Trace("picker.quick-jump", map[string]interface{}{"position": position})
}

func (PickerTracer) Cancel(reason cancelReason) {
	logging.Trace("picker.cancel", map[string]interface{}{"reason": string(reason)})
}

func (PickerTracer) Replace(count int, position int, ok bool) {
	logging.Trace("picker.replace", map[string]interface{}{
		"items":    count,
		"position": position,
		"selected": ok,
	})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
