package model

import (
	"fmt"
	"strings"
)

// PositionLock names a screen-relative anchor that a viewer's placement is
// pinned to. A non-None lock supersedes explicit coordinates: the platform
// recomputes the viewer position from the anchor whenever its geometry or
// the screen layout changes.
type PositionLock int

const (
	LockNone PositionLock = iota
	LockTopLeft
	LockTopRight
	LockCenter
	LockBottomLeft
	LockBottomRight
)

// positionLockNames are the wire names used by the session protocol.
var positionLockNames = [...]string{"None", "TopLeft", "TopRight", "Center", "BottomLeft", "BottomRight"}

func (p PositionLock) String() string {
	if p < LockNone || p > LockBottomRight {
		return "None"
	}
	return positionLockNames[p]
}

// ParsePositionLock converts a protocol value to a PositionLock. Matching is
// exact and case-sensitive: protocol values are never case-folded.
func ParsePositionLock(s string) (PositionLock, error) {
	for i, name := range positionLockNames {
		if s == name {
			return PositionLock(i), nil
		}
	}
	return LockNone, fmt.Errorf("unknown screen position %q (expected None, TopLeft, TopRight, Center, BottomLeft, or BottomRight)", s)
}

// FullscreenMode selects which display area a fullscreen session covers.
type FullscreenMode int

const (
	// FullscreenCurrentScreen expands the viewer over the screen it
	// currently occupies.
	FullscreenCurrentScreen FullscreenMode = iota
	// FullscreenPrimaryScreen expands the viewer over the primary screen.
	FullscreenPrimaryScreen
	// FullscreenVirtualScreen spans the viewer across all screens.
	FullscreenVirtualScreen
)

var fullscreenModeNames = [...]string{"current", "primary", "virtual"}

func (m FullscreenMode) String() string {
	if m < FullscreenCurrentScreen || m > FullscreenVirtualScreen {
		return "current"
	}
	return fullscreenModeNames[m]
}

// ParseFullscreenMode converts a settings value to a FullscreenMode. Unlike
// protocol values, settings values are matched case-insensitively.
func ParseFullscreenMode(s string) (FullscreenMode, error) {
	switch strings.ToLower(s) {
	case "current":
		return FullscreenCurrentScreen, nil
	case "primary":
		return FullscreenPrimaryScreen, nil
	case "virtual":
		return FullscreenVirtualScreen, nil
	default:
		return FullscreenCurrentScreen, fmt.Errorf("unknown fullscreen mode %q (expected current, primary, or virtual)", s)
	}
}
