package model

import "strings"

// WindowFilter narrows an enumeration snapshot for display. Unlike session
// identity resolution, which matches exactly, display filters match
// case-insensitive substrings: they exist for a human scanning a window
// list, not for pinning down one target.
type WindowFilter struct {
	// Title keeps windows whose title contains this text.
	Title string
	// Class keeps windows whose class contains this text.
	Class string
	// VisibleOnly drops hidden windows.
	VisibleOnly bool
}

// FilterWindows applies f to a snapshot, preserving enumeration order.
func FilterWindows(windows []Window, f WindowFilter) []Window {
	if f.Title == "" && f.Class == "" && !f.VisibleOnly {
		return windows
	}

	titleLower := strings.ToLower(f.Title)
	classLower := strings.ToLower(f.Class)

	var result []Window
	for _, w := range windows {
		if f.VisibleOnly && !w.Visible {
			continue
		}
		if titleLower != "" && !strings.Contains(strings.ToLower(w.Title), titleLower) {
			continue
		}
		if classLower != "" && !strings.Contains(strings.ToLower(w.Class), classLower) {
			continue
		}
		result = append(result, w)
	}
	return result
}
