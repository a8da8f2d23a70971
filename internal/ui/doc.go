// Package ui contains the Bubble Tea program that hosts the tab picker.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, resizes, backend updates, activation results).
//   - Key presses are translated into picker keys (internal/ui/input.go) and
//     fed to the picker engine one at a time.
//   - The Model is the engine's host. Close and activation requests made while
//     the engine handles an event are queued and flushed by finishUpdate:
//     activations run through the command bus, a bare close quits.
//
// State ownership:
//   - Filter text, items and selection live in the picker engine.
//   - The dispatcher keeps the last tmux snapshot so positions can be resolved
//     back to window targets when a tab is activated.
//
// Backend interactions:
//   - A backend.Watcher streams tab snapshots; Update waits for those events
//     and hands them to applyBackendEvent, which replaces the engine's list
//     whenever the snapshot changed. Errors are shown in the status line.
package ui
