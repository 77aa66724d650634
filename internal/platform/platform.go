package platform

import (
	"context"

	"github.com/winmirror/winmirror/internal/model"
)

// Enumerator lists the top-level windows of the operating environment.
type Enumerator interface {
	// ListWindows returns a point-in-time snapshot of all top-level
	// windows in z-order. Results may be stale by the time they are
	// consumed: any window in the snapshot can close at any moment.
	ListWindows() ([]model.Window, error)
}

// Mirror is the live binding between a viewer and the target window whose
// contents it displays.
type Mirror interface {
	// Bind attaches the mirror to the given window, optionally restricted
	// to a sub-region of its content. Binding a stale handle fails.
	Bind(handle int64, region *model.Region) error

	// Target returns the handle of the currently bound window, 0 when
	// unbound.
	Target() int64

	// Region returns the active sub-region, nil when the whole window is
	// mirrored or the mirror is unbound.
	Region() *model.Region

	// AspectRatio returns the width/height ratio of the mirrored content,
	// 0 when the mirror is unbound.
	AspectRatio() float64
}

// ViewerState is the read side of a live session. It is everything the
// session capturer needs to describe a running viewer.
type ViewerState interface {
	Mirror() Mirror
	Opacity() float64
	Location() model.Point
	ClientSize() model.Size
	PositionPolicy() model.PositionLock
	ChromeVisible() bool
	ClickForwarding() bool
	ClickThrough() bool
	Fullscreen() bool
}

// Viewer is one live mirroring session: the always-on-top window showing the
// mirrored content plus its visual and behavioral settings. Setters are
// single-field, independent, and do not fail.
type Viewer interface {
	ViewerState

	// SetOpacity sets the viewer opacity from 0 (transparent) to 1 (opaque).
	SetOpacity(opacity float64)
	SetLocation(loc model.Point)
	SetClientSize(size model.Size)

	// SetPositionPolicy installs a screen anchor. Future geometry changes
	// are computed by the policy, superseding explicit coordinates.
	SetPositionPolicy(lock model.PositionLock)

	SetChromeVisible(visible bool)
	SetClickForwarding(enabled bool)
	SetClickThrough(enabled bool)
	EnterFullscreen(mode model.FullscreenMode)

	// OnDuplicateRequest registers the callback fired when the user asks
	// to clone the session from the viewer's own chrome (menu item or
	// shortcut).
	OnDuplicateRequest(fn func())

	// Run shows the viewer and blocks until it is closed or the context is
	// canceled.
	Run(ctx context.Context) error
}

// ViewerFactory creates live viewer sessions.
type ViewerFactory interface {
	// NewViewer creates a hidden viewer with default placement and
	// settings. The caller configures it and then calls Run.
	NewViewer() (Viewer, error)
}
