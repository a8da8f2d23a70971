package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tmux-tab-picker/internal/picker"
)

const ellipsis = "…"

// View renders the prompt, the rows that fit and the optional status and
// footer lines.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	frame := m.engine.Render(m.height, m.width)
	lines := make([]string, 0, len(frame.Rows)+3)
	lines = append(lines, frame.Prompt)

	limit := m.maxVisibleRows()
	start, end := visibleRange(frame.Rows, m.offset, limit)
	for _, row := range frame.Rows[start:end] {
		lines = append(lines, row.Text)
	}
	if status := m.statusText(); status != "" {
		if m.width > 0 {
			status = truncate.StringWithTail(status, uint(m.width), ellipsis)
		}
		lines = append(lines, styles.Error.Render(status))
	}
	if m.showFooter {
		lines = append(lines, styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	}
	return strings.Join(applyWidth(lines, m.width), "\n")
}

func (m *Model) statusText() string {
	if m.errMsg != "" {
		return m.errMsg
	}
	return m.backendErr
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	return nil
}

// maxVisibleRows returns how many item rows fit, or -1 when unbounded.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 1 // prompt
	if m.statusText() != "" {
		used++
	}
	if m.showFooter {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

// syncViewport scrolls the row window so the selected row stays visible.
func (m *Model) syncViewport() {
	limit := m.maxVisibleRows()
	rows := m.engine.Render(m.height, m.width).Rows
	if limit < 0 || len(rows) <= limit {
		m.offset = 0
		return
	}
	selected := -1
	for i, row := range rows {
		if row.Selected {
			selected = i
			break
		}
	}
	if selected >= 0 {
		if selected < m.offset {
			m.offset = selected
		}
		if selected >= m.offset+limit {
			m.offset = selected - limit + 1
		}
	}
	m.offset = clampOffset(m.offset, len(rows), limit)
}

func visibleRange(rows []picker.Row, offset, limit int) (int, int) {
	if limit < 0 || len(rows) <= limit {
		return 0, len(rows)
	}
	start := clampOffset(offset, len(rows), limit)
	return start, start + limit
}

func clampOffset(offset, total, limit int) int {
	maxOffset := total - limit
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func applyWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, ellipsis)
		}
		out[i] = line
	}
	return out
}
