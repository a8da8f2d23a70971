package picker

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Recognised settings keys.
const (
	KeyIgnoreCase             = "ignore_case"
	KeyQuickJump              = "quick_jump"
	KeySelectionColor         = "selection_color"
	KeyApplySelectionAccentTo = "apply_selection_accent_to"
	KeyActiveTabColor         = "active_tab_color"
	KeyApplyTabColorTo        = "apply_tab_color_to"
	KeyUnderlineActive        = "underline_active"
)

var knownKeys = []string{
	KeyIgnoreCase,
	KeyQuickJump,
	KeySelectionColor,
	KeyApplySelectionAccentTo,
	KeyActiveTabColor,
	KeyApplyTabColorTo,
	KeyUnderlineActive,
}

const noColor = "none"

// ErrInvalidOption is wrapped by every fatal configuration error.
var ErrInvalidOption = errors.New("invalid option")

// OptionError reports a recognised key holding a value that cannot be used.
type OptionError struct {
	Key    string
	Value  string
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%s: invalid value %q (%s)", e.Key, e.Value, e.Reason)
}

func (e *OptionError) Unwrap() error {
	return ErrInvalidOption
}

// Accent selects which colour channel a configured colour is applied to.
type Accent int

const (
	AccentForeground Accent = iota
	AccentBackground
)

func (a Accent) String() string {
	if a == AccentBackground {
		return "background"
	}
	return "foreground"
}

// Options is the typed picker configuration. It is not modified after load.
type Options struct {
	IgnoreCase      bool
	QuickJump       bool
	SelectionColor  string
	SelectionAccent Accent
	// ActiveTabColor is empty when unset ("none").
	ActiveTabColor  string
	TabColorAccent  Accent
	UnderlineActive bool
}

// DefaultOptions returns the configuration used for keys that are not set.
func DefaultOptions() Options {
	return Options{
		IgnoreCase:      true,
		QuickJump:       false,
		SelectionColor:  "yellow",
		SelectionAccent: AccentForeground,
		TabColorAccent:  AccentForeground,
		UnderlineActive: true,
	}
}

// Unrecognized is a settings entry no option consumed.
type Unrecognized struct {
	Key        string
	Value      string
	Suggestion string
}

func (u Unrecognized) String() string {
	if u.Suggestion != "" {
		return fmt.Sprintf("%s=%q (did you mean %s?)", u.Key, u.Value, u.Suggestion)
	}
	return fmt.Sprintf("%s=%q", u.Key, u.Value)
}

// ParseOptions resolves a string-keyed settings map into Options. Each known
// key is consumed as it is parsed; whatever remains is returned as
// unrecognized entries, sorted by key. The input map is left untouched.
func ParseOptions(settings map[string]string) (Options, []Unrecognized, error) {
	remaining := make(map[string]string, len(settings))
	for k, v := range settings {
		remaining[k] = v
	}
	opts := DefaultOptions()
	var err error

	if opts.IgnoreCase, err = takeBool(remaining, KeyIgnoreCase, opts.IgnoreCase); err != nil {
		return Options{}, nil, err
	}
	if opts.QuickJump, err = takeBool(remaining, KeyQuickJump, opts.QuickJump); err != nil {
		return Options{}, nil, err
	}
	if value, ok := take(remaining, KeySelectionColor); ok {
		opts.SelectionColor = value
	}
	if opts.SelectionAccent, err = takeAccent(remaining, KeyApplySelectionAccentTo, opts.SelectionAccent); err != nil {
		return Options{}, nil, err
	}
	if value, ok := take(remaining, KeyActiveTabColor); ok {
		if strings.EqualFold(strings.TrimSpace(value), noColor) {
			opts.ActiveTabColor = ""
		} else {
			opts.ActiveTabColor = value
		}
	}
	if opts.TabColorAccent, err = takeAccent(remaining, KeyApplyTabColorTo, opts.TabColorAccent); err != nil {
		return Options{}, nil, err
	}
	if opts.UnderlineActive, err = takeBool(remaining, KeyUnderlineActive, opts.UnderlineActive); err != nil {
		return Options{}, nil, err
	}

	return opts, unrecognized(remaining), nil
}

func take(settings map[string]string, key string) (string, bool) {
	value, ok := settings[key]
	if ok {
		delete(settings, key)
	}
	return value, ok
}

func takeBool(settings map[string]string, key string, fallback bool) (bool, error) {
	value, ok := take(settings, key)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback, &OptionError{Key: key, Value: value, Reason: "expected true or false"}
	}
	return parsed, nil
}

func takeAccent(settings map[string]string, key string, fallback Accent) (Accent, error) {
	value, ok := take(settings, key)
	if !ok {
		return fallback, nil
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "foreground", "fg":
		return AccentForeground, nil
	case "background", "bg":
		return AccentBackground, nil
	}
	return fallback, &OptionError{Key: key, Value: value, Reason: "expected foreground, fg, background or bg"}
}

func unrecognized(remaining map[string]string) []Unrecognized {
	if len(remaining) == 0 {
		return nil
	}
	out := make([]Unrecognized, 0, len(remaining))
	for key, value := range remaining {
		out = append(out, Unrecognized{Key: key, Value: value, Suggestion: suggestKey(key)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// suggestKey returns the closest known key containing the characters of key
// in order, or "" when none does.
func suggestKey(key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return ""
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, knownKeys)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.Target
}
