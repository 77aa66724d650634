package session

import (
	"fmt"

	"github.com/winmirror/winmirror/internal/model"
	"github.com/winmirror/winmirror/internal/platform"
)

// Resolve turns an abstract window identity into at most one concrete
// window. Title and class identities are matched exactly and
// case-sensitively against a fresh enumeration snapshot, filtered to visible
// windows when mustBeVisible is set, taking the first match in enumeration
// order. A handle identity is returned directly: it is already concrete, so
// neither enumeration nor the visibility filter applies.
//
// A nil result with a nil error is a normal miss, not a failure. The only
// error Resolve reports is a failed enumeration, which callers also treat as
// a miss.
func Resolve(id Identity, mustBeVisible bool, enum platform.Enumerator) (*model.Window, error) {
	kind := id.Kind()
	switch kind {
	case IdentityNone:
		return nil, nil
	case IdentityHandle:
		return &model.Window{Handle: id.Handle}, nil
	}

	windows, err := enum.ListWindows()
	if err != nil {
		return nil, fmt.Errorf("enumerate windows: %w", err)
	}

	for i := range windows {
		w := &windows[i]
		if mustBeVisible && !w.Visible {
			continue
		}
		switch kind {
		case IdentityTitle:
			if w.Title == id.Title {
				return w, nil
			}
		case IdentityClass:
			if w.Class == id.Class {
				return w, nil
			}
		}
	}
	return nil, nil
}
