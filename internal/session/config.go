// Package session implements the session-configuration protocol: the record
// describing one window-mirroring session, the textual command-line codec
// for that record, window-identity resolution, and the apply/capture pair
// that moves configurations in and out of a live viewer.
package session

import (
	"fmt"

	"github.com/winmirror/winmirror/internal/model"
)

// IdentityKind says which alternative of a window identity is active.
type IdentityKind int

const (
	IdentityNone IdentityKind = iota
	IdentityHandle
	IdentityTitle
	IdentityClass
)

// Identity is the abstract description used to find a target window. At most
// one alternative is meaningful: when several are populated the first in
// handle, title, class order wins, which is also the precedence the protocol
// encoder applies.
type Identity struct {
	Handle int64
	Title  string
	Class  string
}

// Kind returns the active alternative.
func (id Identity) Kind() IdentityKind {
	switch {
	case id.Handle != 0:
		return IdentityHandle
	case id.Title != "":
		return IdentityTitle
	case id.Class != "":
		return IdentityClass
	default:
		return IdentityNone
	}
}

func (id Identity) String() string {
	switch id.Kind() {
	case IdentityHandle:
		return fmt.Sprintf("handle:%d", id.Handle)
	case IdentityTitle:
		return fmt.Sprintf("title:%q", id.Title)
	case IdentityClass:
		return fmt.Sprintf("class:%q", id.Class)
	default:
		return "none"
	}
}

// DefaultOpacity is the fully opaque default for new configurations.
const DefaultOpacity = 255

// Config is a complete or partial description of one mirroring session: the
// target window identity plus placement and behavior. A Config is a
// snapshot, not a live object: it is populated by Decode or Capture,
// consumed by Apply, and never mutated afterwards.
//
// Defaults established by NewConfig:
//
//	Identity        none
//	MustBeVisible   false
//	Region          nil (whole window)
//	Position        LockNone
//	Location, Size  nil (platform default placement)
//	Width, Height   0 (unset)
//	Opacity         255 (fully opaque)
//	DisableChrome   false
//	ClickForwarding false
//	ClickThrough    false
//	Fullscreen      false
type Config struct {
	Identity Identity

	// MustBeVisible restricts title and class resolution to visible
	// windows. Handle resolution ignores it: a handle is already concrete.
	MustBeVisible bool

	Region *model.Region

	// Position anchors the viewer to a screen corner or center. A non-None
	// lock and an explicit Location are mutually exclusive; Decode keeps
	// whichever token came last.
	Position model.PositionLock
	Location *model.Point
	Size     *model.Size

	// Width and Height request a single dimension, with the other derived
	// from the mirrored content's aspect ratio at apply time. Ignored when
	// Size is set.
	Width  int
	Height int

	Opacity         uint8
	DisableChrome   bool
	ClickForwarding bool
	ClickThrough    bool
	Fullscreen      bool
}

// NewConfig returns a Config holding every documented default.
func NewConfig() Config {
	return Config{Opacity: DefaultOpacity}
}
