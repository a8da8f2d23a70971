package theme

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/tmux-tab-picker/internal/picker"
)

var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright_black":   "8",
	"gray":           "8",
	"grey":           "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// ResolveColor maps a configured colour name to a terminal colour. Named ANSI
// colours, 0-255 palette indices and #rrggbb values are understood; anything
// else yields NoColor so the text is left unstyled.
func ResolveColor(name string) lipgloss.TerminalColor {
	value := strings.ToLower(strings.TrimSpace(name))
	value = strings.ReplaceAll(value, "-", "_")
	if code, ok := namedColors[value]; ok {
		return lipgloss.Color(code)
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 255 {
		return lipgloss.Color(value)
	}
	if isHexColor(value) {
		return lipgloss.Color(value)
	}
	return lipgloss.NoColor{}
}

func isHexColor(value string) bool {
	if !strings.HasPrefix(value, "#") {
		return false
	}
	digits := value[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	_, err := strconv.ParseUint(digits, 16, 32)
	return err == nil
}

// Painter renders picker styles with Lip Gloss.
type Painter struct {
	styles *Styles
}

// NewPainter returns a Painter over the given styles, or the defaults when
// styles is nil.
func NewPainter(styles *Styles) Painter {
	if styles == nil {
		styles = Default()
	}
	return Painter{styles: styles}
}

// Apply implements picker.Painter.
func (p Painter) Apply(text string, style picker.Style) string {
	switch style {
	case picker.StyleMarker:
		return p.styles.PromptMarker.Render(text)
	case picker.StyleMuted:
		return p.styles.Muted.Render(text)
	case picker.StyleUnderline:
		return p.styles.Underline.Render(text)
	}
	return text
}

// Color implements picker.Painter.
func (p Painter) Color(text, color string, accent picker.Accent) string {
	c := ResolveColor(color)
	if _, none := c.(lipgloss.NoColor); none {
		return text
	}
	style := lipgloss.NewStyle()
	if accent == picker.AccentBackground {
		style = style.Background(c)
	} else {
		style = style.Foreground(c)
	}
	return style.Render(text)
}

var _ picker.Painter = Painter{}
