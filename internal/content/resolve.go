package content

import "strings"

// Text returns v unchanged when its trimmed form is non-empty, else the
// placeholder. A whitespace-only field counts as absent.
func Text(v, placeholder string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return placeholder
}

// ListOrPlaceholder is the result of resolving an optional list: either the
// items pass through untouched, or a single placeholder line is rendered in
// their place.
type ListOrPlaceholder struct {
	Items       []string
	Placeholder string
}

// IsPlaceholder reports whether the list resolved to placeholder mode.
func (l ListOrPlaceholder) IsPlaceholder() bool { return l.Items == nil }

// List resolves an optional list. Nil or empty signals placeholder mode;
// otherwise the items pass through with order preserved. Individual items
// are not trimmed or deduplicated.
func List(items []string, placeholder string) ListOrPlaceholder {
	if len(items) == 0 {
		return ListOrPlaceholder{Placeholder: placeholder}
	}
	return ListOrPlaceholder{Items: items}
}

const stackPlaceholder = "Web stack"

// StackDisplay joins the first five stack entries with a bullet separator
// for the meta card. An empty stack shows the generic placeholder.
func StackDisplay(stack []string) string {
	if len(stack) == 0 {
		return stackPlaceholder
	}
	if len(stack) > 5 {
		stack = stack[:5]
	}
	return strings.Join(stack, " • ")
}
