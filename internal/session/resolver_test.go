package session

import (
	"errors"
	"testing"

	"github.com/winmirror/winmirror/internal/model"
)

type fakeEnumerator struct {
	windows []model.Window
	err     error
	calls   int
}

func (e *fakeEnumerator) ListWindows() ([]model.Window, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return e.windows, nil
}

func TestResolve_None(t *testing.T) {
	enum := &fakeEnumerator{}
	w, err := Resolve(Identity{}, false, enum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != nil {
		t.Errorf("expected no window for empty identity, got %+v", w)
	}
	if enum.calls != 0 {
		t.Errorf("expected no enumeration, got %d calls", enum.calls)
	}
}

func TestResolve_HandleSkipsEnumeration(t *testing.T) {
	enum := &fakeEnumerator{err: errors.New("should not be called")}
	w, err := Resolve(Identity{Handle: 4242}, true, enum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w == nil || w.Handle != 4242 {
		t.Fatalf("expected window with handle 4242, got %+v", w)
	}
	if enum.calls != 0 {
		t.Errorf("handle identity must not enumerate, got %d calls", enum.calls)
	}
}

func TestResolve_TitleExactMatch(t *testing.T) {
	enum := &fakeEnumerator{windows: []model.Window{
		{Handle: 1, Title: "Notepad", Visible: true},
		{Handle: 2, Title: "notepad", Visible: true},
		{Handle: 3, Title: "Notepad - readme.txt", Visible: true},
	}}
	w, err := Resolve(Identity{Title: "notepad"}, false, enum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w == nil || w.Handle != 2 {
		t.Errorf("expected case-sensitive exact match on handle 2, got %+v", w)
	}
}

func TestResolve_TitleFirstInOrder(t *testing.T) {
	enum := &fakeEnumerator{windows: []model.Window{
		{Handle: 10, Title: "Terminal", Visible: true},
		{Handle: 11, Title: "Terminal", Visible: true},
	}}
	w, err := Resolve(Identity{Title: "Terminal"}, false, enum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w == nil || w.Handle != 10 {
		t.Errorf("expected first match in enumeration order, got %+v", w)
	}
}

func TestResolve_VisibilityFilter(t *testing.T) {
	enum := &fakeEnumerator{windows: []model.Window{
		{Handle: 20, Title: "Terminal", Visible: false},
		{Handle: 21, Title: "Terminal", Visible: true},
	}}

	w, err := Resolve(Identity{Title: "Terminal"}, true, enum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w == nil || w.Handle != 21 {
		t.Errorf("expected hidden earlier window skipped, got %+v", w)
	}

	w, err = Resolve(Identity{Title: "Terminal"}, false, enum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w == nil || w.Handle != 20 {
		t.Errorf("expected hidden window eligible without filter, got %+v", w)
	}
}

func TestResolve_Class(t *testing.T) {
	enum := &fakeEnumerator{windows: []model.Window{
		{Handle: 30, Title: "Downloads", Class: "CabinetWClass", Visible: true},
		{Handle: 31, Title: "Browser", Class: "Chrome_WidgetWin_1", Visible: true},
	}}
	w, err := Resolve(Identity{Class: "Chrome_WidgetWin_1"}, false, enum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w == nil || w.Handle != 31 {
		t.Errorf("expected class match on handle 31, got %+v", w)
	}
}

func TestResolve_Miss(t *testing.T) {
	enum := &fakeEnumerator{windows: []model.Window{
		{Handle: 40, Title: "Terminal", Visible: true},
	}}
	w, err := Resolve(Identity{Title: "No Such Window"}, false, enum)
	if err != nil {
		t.Fatalf("a miss is not an error, got: %v", err)
	}
	if w != nil {
		t.Errorf("expected nil window on miss, got %+v", w)
	}
}

func TestResolve_EnumerationError(t *testing.T) {
	enumErr := errors.New("desktop unavailable")
	enum := &fakeEnumerator{err: enumErr}
	w, err := Resolve(Identity{Title: "Terminal"}, false, enum)
	if !errors.Is(err, enumErr) {
		t.Fatalf("expected wrapped enumeration error, got %v", err)
	}
	if w != nil {
		t.Errorf("expected nil window on enumeration failure, got %+v", w)
	}
}
