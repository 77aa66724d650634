package model

// Window describes one top-level window of the operating environment as
// reported by a platform enumerator. A Window is a point-in-time snapshot:
// the underlying window can move, retitle, or close at any moment after
// enumeration.
type Window struct {
	Handle  int64  `json:"handle"`
	Title   string `json:"title"`
	Class   string `json:"class"`
	PID     int    `json:"pid,omitempty"`
	Visible bool   `json:"visible"`
	Bounds  Rect   `json:"bounds"`
}
