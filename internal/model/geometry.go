package model

// Point is a position in screen coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect is a rectangle in screen or window-content coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Region selects the portion of a target window that is mirrored. One
// underlying rectangle carries both interpretations: when Relative is true
// its four values are read as left/top/right/bottom padding insets from the
// window borders, otherwise Bounds is an absolute sub-rectangle of the
// window content. Exactly one interpretation is active at a time, selected
// by Relative.
type Region struct {
	Relative bool `json:"relative,omitempty"`
	Bounds   Rect `json:"bounds"`
}

// PaddingRegion builds a relative region from four border insets.
func PaddingRegion(left, top, right, bottom int) Region {
	return Region{Relative: true, Bounds: Rect{X: left, Y: top, Width: right, Height: bottom}}
}

// AbsoluteRegion builds an absolute region from a window-space rectangle.
func AbsoluteRegion(x, y, width, height int) Region {
	return Region{Bounds: Rect{X: x, Y: y, Width: width, Height: height}}
}

// Insets returns the padding interpretation of the region. Only meaningful
// when Relative is true.
func (r Region) Insets() (left, top, right, bottom int) {
	return r.Bounds.X, r.Bounds.Y, r.Bounds.Width, r.Bounds.Height
}
