package session

import (
	"math"

	"github.com/winmirror/winmirror/internal/model"
)

// AspectSource reports the aspect ratio of the mirrored content.
// platform.Mirror satisfies it.
type AspectSource interface {
	// AspectRatio returns width divided by height, 0 when unknown.
	AspectRatio() float64
}

// DeriveSize completes a partial size from the aspect ratio of the mirrored
// content: a known width yields height = width/ratio, a known height yields
// width = height*ratio, both rounded to the nearest pixel. It reports false
// when nothing can be derived — no known dimension, no source, or a source
// with no content yet — in which case the caller drops the field and falls
// back to default sizing. A fully specified size passes through unchanged.
func DeriveSize(width, height int, src AspectSource) (model.Size, bool) {
	if width > 0 && height > 0 {
		return model.Size{Width: width, Height: height}, true
	}
	if width <= 0 && height <= 0 {
		return model.Size{}, false
	}
	if src == nil {
		return model.Size{}, false
	}
	ratio := src.AspectRatio()
	if ratio <= 0 {
		return model.Size{}, false
	}
	if width > 0 {
		return model.Size{Width: width, Height: int(math.Round(float64(width) / ratio))}, true
	}
	return model.Size{Width: int(math.Round(float64(height) * ratio)), Height: height}, true
}
