package dispatcher

import (
	"github.com/atomicstack/tmux-tab-picker/internal/backend"
	"github.com/atomicstack/tmux-tab-picker/internal/picker"
	"github.com/atomicstack/tmux-tab-picker/internal/tmux"
)

// Result describes how a backend event changed the dispatcher's view.
type Result struct {
	Items   []picker.Item
	Updated bool
	Err     error
}

// Dispatcher turns backend events into picker list deliveries. It remembers
// the last snapshot so positions can be resolved back to tmux targets.
type Dispatcher struct {
	snapshot tmux.TabSnapshot
	seeded   bool
}

func New() *Dispatcher {
	return &Dispatcher{}
}

// Handle folds evt into the dispatcher. Errors leave the snapshot untouched;
// a snapshot identical to the previous one is not reported as an update.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	if evt.Err != nil {
		return Result{Err: evt.Err}
	}
	if d.seeded && d.snapshot.Equal(evt.Snapshot) {
		return Result{}
	}
	d.snapshot = evt.Snapshot
	d.seeded = true
	return Result{Items: ItemsFromSnapshot(evt.Snapshot), Updated: true}
}

// Snapshot returns the most recently accepted snapshot.
func (d *Dispatcher) Snapshot() tmux.TabSnapshot {
	return d.snapshot
}

// ItemsFromSnapshot converts tabs into picker items.
func ItemsFromSnapshot(snapshot tmux.TabSnapshot) []picker.Item {
	items := make([]picker.Item, 0, len(snapshot.Tabs))
	for _, tab := range snapshot.Tabs {
		items = append(items, picker.Item{
			Position: tab.Position,
			Name:     tab.Name,
			Active:   tab.Active,
		})
	}
	return items
}
