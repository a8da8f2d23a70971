package picker

import (
	"strconv"
	"strings"
)

const (
	promptMarker      = ">"
	promptPlaceholder = "(filter)"
)

// Style names the fixed, non-configurable styles the formatter asks for.
type Style int

const (
	// StyleMarker is the prompt marker.
	StyleMarker Style = iota
	// StyleMuted de-emphasises the filter text and placeholder.
	StyleMuted
	// StyleUnderline marks the active tab's name.
	StyleUnderline
)

// Painter applies styles to text. Implementations may nest escape sequences
// around text that is already styled.
type Painter interface {
	Apply(text string, style Style) string
	Color(text, color string, accent Accent) string
}

// PlainPainter returns text unchanged.
type PlainPainter struct{}

func (PlainPainter) Apply(text string, _ Style) string { return text }

func (PlainPainter) Color(text, _ string, _ Accent) string { return text }

// Row is one rendered item.
type Row struct {
	Position int
	Text     string
	Active   bool
	Selected bool
}

// Frame is the formatter's output: the filter prompt and one row per
// visible item, in position order.
type Frame struct {
	Prompt string
	Rows   []Row
}

// Lines returns the prompt followed by the row texts.
func (f Frame) Lines() []string {
	lines := make([]string, 0, len(f.Rows)+1)
	lines = append(lines, f.Prompt)
	for _, row := range f.Rows {
		lines = append(lines, row.Text)
	}
	return lines
}

func (f Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}

// Render formats s without modifying it.
func Render(s *State, p Painter) Frame {
	if p == nil {
		p = PlainPainter{}
	}
	opts := s.Options()
	visible := s.Visible()
	frame := Frame{
		Prompt: renderPrompt(s.Filter(), p),
		Rows:   make([]Row, 0, len(visible)),
	}
	for _, item := range visible {
		frame.Rows = append(frame.Rows, renderRow(item, s.IsSelected(item.Position), opts, p))
	}
	return frame
}

func renderPrompt(filter string, p Painter) string {
	text := filter
	if text == "" {
		text = promptPlaceholder
	}
	return p.Apply(promptMarker, StyleMarker) + " " + p.Apply(text, StyleMuted)
}

func renderRow(item Item, selected bool, opts Options, p Painter) Row {
	name := item.Name
	if item.Active && opts.UnderlineActive {
		name = p.Apply(name, StyleUnderline)
	}
	if selected {
		name = p.Color(name, opts.SelectionColor, opts.SelectionAccent)
	}
	text := strconv.Itoa(item.Position+1) + " - " + name
	if item.Active && opts.ActiveTabColor != "" {
		text = p.Color(text, opts.ActiveTabColor, opts.TabColorAccent)
	}
	return Row{
		Position: item.Position,
		Text:     text,
		Active:   item.Active,
		Selected: selected,
	}
}
