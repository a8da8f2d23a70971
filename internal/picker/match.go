package picker

import "strings"

// Matches reports whether the item's name equals filter or contains it.
// With ignoreCase both sides are lower-cased first. An empty filter matches
// every item.
func Matches(item Item, filter string, ignoreCase bool) bool {
	name := item.Name
	if ignoreCase {
		name = strings.ToLower(name)
		filter = strings.ToLower(filter)
	}
	return name == filter || strings.Contains(name, filter)
}

// VisibleItems returns the items accepted by Matches, preserving order.
func VisibleItems(items []Item, filter string, ignoreCase bool) []Item {
	visible := make([]Item, 0, len(items))
	for _, item := range items {
		if Matches(item, filter, ignoreCase) {
			visible = append(visible, item)
		}
	}
	return visible
}
