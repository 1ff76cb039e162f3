package scaledraw

import (
	"fmt"
	"math"
)

// Rect is an integer rectangle described by its top-left corner and its
// spans. Spans must be >= 0; a rectangle is empty iff either span is 0.
//
// Coordinates and spans are 32-bit so that rectangle arithmetic can be
// checked exactly in 64-bit; X+XSpan and Y+YSpan must stay within int32.
type Rect struct {
	X     int32
	Y     int32
	XSpan int32
	YSpan int32
}

// RectOf returns the rectangle with top-left (x, y) and the given spans.
func RectOf(x, y, xSpan, ySpan int32) Rect {
	return Rect{X: x, Y: y, XSpan: xSpan, YSpan: ySpan}
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.XSpan <= 0 || r.YSpan <= 0
}

// Area returns XSpan*YSpan as a 64-bit value, so that large rectangles
// never overflow.
func (r Rect) Area() int64 {
	if r.IsEmpty() {
		return 0
	}
	return int64(r.XSpan) * int64(r.YSpan)
}

// XMax returns the last column inside the rectangle (X+XSpan-1).
// Only meaningful for non-empty rectangles.
func (r Rect) XMax() int32 {
	return r.X + r.XSpan - 1
}

// YMax returns the last row inside the rectangle (Y+YSpan-1).
// Only meaningful for non-empty rectangles.
func (r Rect) YMax() int32 {
	return r.Y + r.YSpan - 1
}

// WithSpans returns a copy of r with the given spans and the same corner.
func (r Rect) WithSpans(xSpan, ySpan int32) Rect {
	return Rect{X: r.X, Y: r.Y, XSpan: xSpan, YSpan: ySpan}
}

// Contains reports whether o lies entirely inside r.
// An empty o is contained in any rectangle.
func (r Rect) Contains(o Rect) bool {
	if o.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return o.X >= r.X && o.Y >= r.Y &&
		o.XMax() <= r.XMax() && o.YMax() <= r.YMax()
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.X <= o.XMax() && o.X <= r.XMax() &&
		r.Y <= o.YMax() && o.Y <= r.YMax()
}

// Intersect returns the intersection of r and o.
// The result is empty (both spans 0) when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	if !r.Overlaps(o) {
		return Rect{}
	}
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	xMax := min(r.XMax(), o.XMax())
	yMax := min(r.YMax(), o.YMax())
	return Rect{X: x, Y: y, XSpan: xMax - x + 1, YSpan: yMax - y + 1}
}

// ClampX clamps x into [r.X, r.X+r.XSpan-1].
// Only meaningful for non-empty rectangles.
func (r Rect) ClampX(x int32) int32 {
	if x < r.X {
		return r.X
	}
	if x > r.XMax() {
		return r.XMax()
	}
	return x
}

// ClampY clamps y into [r.Y, r.Y+r.YSpan-1].
// Only meaningful for non-empty rectangles.
func (r Rect) ClampY(y int32) int32 {
	if y < r.Y {
		return r.Y
	}
	if y > r.YMax() {
		return r.YMax()
	}
	return y
}

// String returns a compact "(x, y, xSpan x ySpan)" form for diagnostics.
func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d, %dx%d)", r.X, r.Y, r.XSpan, r.YSpan)
}

// checkRect validates spans and 32-bit edge arithmetic. Spans supplied
// by callers may be arbitrary, so X+XSpan is recomputed in 64-bit and
// rejected when it leaves the int32 range rather than being allowed to
// wrap.
func checkRect(r Rect) error {
	if r.XSpan < 0 || r.YSpan < 0 {
		return fmt.Errorf("negative span in rect %v: %w", r, ErrInvalidArgument)
	}
	if int64(r.X)+int64(r.XSpan) > math.MaxInt32 ||
		int64(r.Y)+int64(r.YSpan) > math.MaxInt32 {
		return fmt.Errorf("rect %v overflows int32: %w", r, ErrInvalidArgument)
	}
	return nil
}
