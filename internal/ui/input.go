package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-tab-picker/internal/picker"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.quitting || m.activating {
		return nil
	}
	for _, k := range keysFromMsg(keyMsg) {
		m.engine.Update(picker.KeyPressed(k))
		if m.closeRequested || m.pendingTab != nil {
			break
		}
	}
	return nil
}

// keysFromMsg translates a Bubble Tea key message into picker keys. A
// message carrying several runes (typed quickly or pasted) yields one key per
// rune.
func keysFromMsg(msg tea.KeyMsg) []picker.Key {
	var mods picker.Modifier
	if msg.Alt {
		mods |= picker.ModAlt
	}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		keys := make([]picker.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, picker.Key{Code: picker.KeyRune, Rune: r, Mods: mods})
		}
		return keys
	case tea.KeyEsc:
		return []picker.Key{{Code: picker.KeyEscape, Mods: mods}}
	case tea.KeyEnter:
		return []picker.Key{{Code: picker.KeyEnter, Mods: mods}}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []picker.Key{{Code: picker.KeyBackspace, Mods: mods}}
	case tea.KeyTab:
		return []picker.Key{{Code: picker.KeyTab, Mods: mods}}
	case tea.KeyShiftTab:
		return []picker.Key{{Code: picker.KeyTab, Mods: mods | picker.ModShift}}
	case tea.KeyUp:
		return []picker.Key{{Code: picker.KeyUp, Mods: mods}}
	case tea.KeyDown:
		return []picker.Key{{Code: picker.KeyDown, Mods: mods}}
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := rune('a' + int(msg.Type-tea.KeyCtrlA))
		return []picker.Key{{Code: picker.KeyRune, Rune: r, Mods: mods | picker.ModCtrl}}
	}
	return []picker.Key{{Code: picker.KeyOther, Mods: mods}}
}
