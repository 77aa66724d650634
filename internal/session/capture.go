package session

import (
	"math"

	"github.com/winmirror/winmirror/internal/model"
	"github.com/winmirror/winmirror/internal/platform"
)

// duplicateOffset nudges a captured location so a cloned session does not
// stack exactly on top of its source.
const duplicateOffset = 30

// Capture reads the current state of a live session into a Config. It is
// the designed inverse of Apply for the duplicate-session flow, not a
// general introspection API: the identity is the bound mirror's handle —
// never a reverse-derived title or class, since the handle is the
// unambiguous identity once a session is running.
func Capture(st platform.ViewerState) Config {
	cfg := NewConfig()

	m := st.Mirror()
	if handle := m.Target(); handle != 0 {
		cfg.Identity = Identity{Handle: handle}
		if r := m.Region(); r != nil {
			region := *r
			cfg.Region = &region
		}
	}

	cfg.Opacity = opacityByte(st.Opacity())
	cfg.DisableChrome = !st.ChromeVisible()
	cfg.ClickForwarding = st.ClickForwarding()
	cfg.ClickThrough = st.ClickThrough()
	cfg.Fullscreen = st.Fullscreen()

	if lock := st.PositionPolicy(); lock != model.LockNone {
		cfg.Position = lock
	} else {
		loc := st.Location()
		cfg.Location = &model.Point{X: loc.X + duplicateOffset, Y: loc.Y + duplicateOffset}
		size := st.ClientSize()
		cfg.Size = &size
	}

	return cfg
}

// opacityByte converts a 0..1 viewer opacity back to the protocol's 0..255
// scale, clamping values that drift outside the range.
func opacityByte(opacity float64) uint8 {
	v := math.Round(opacity * 255)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}
