package model

import "testing"

func testSnapshot() []Window {
	return []Window{
		{Handle: 1, Title: "Media Player - Paused", Class: "MediaPlayerClass", Visible: true},
		{Handle: 2, Title: "media notes.txt - Editor", Class: "EditorClass", Visible: true},
		{Handle: 3, Title: "Settings", Class: "SettingsClass", Visible: false},
	}
}

func TestFilterWindows_NoFilters(t *testing.T) {
	result := FilterWindows(testSnapshot(), WindowFilter{})
	if len(result) != 3 {
		t.Errorf("expected 3 windows, got %d", len(result))
	}
}

func TestFilterWindows_TitleSubstring(t *testing.T) {
	result := FilterWindows(testSnapshot(), WindowFilter{Title: "media"})
	if len(result) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(result))
	}
	if result[0].Handle != 1 || result[1].Handle != 2 {
		t.Errorf("expected handles 1 and 2 in order, got %d and %d", result[0].Handle, result[1].Handle)
	}
}

func TestFilterWindows_ClassSubstring(t *testing.T) {
	result := FilterWindows(testSnapshot(), WindowFilter{Class: "editor"})
	if len(result) != 1 || result[0].Handle != 2 {
		t.Errorf("expected only handle 2, got %+v", result)
	}
}

func TestFilterWindows_VisibleOnly(t *testing.T) {
	result := FilterWindows(testSnapshot(), WindowFilter{VisibleOnly: true})
	if len(result) != 2 {
		t.Errorf("expected 2 visible windows, got %d", len(result))
	}
	for _, w := range result {
		if !w.Visible {
			t.Errorf("expected only visible windows, got %+v", w)
		}
	}
}

func TestFilterWindows_Combined(t *testing.T) {
	result := FilterWindows(testSnapshot(), WindowFilter{Title: "settings", VisibleOnly: true})
	if len(result) != 0 {
		t.Errorf("expected hidden window excluded, got %+v", result)
	}
}
