package scaledraw

// SrcPixels is a logical read-only image sampled by the scaling
// algorithms.
//
// The bounding rectangle's origin may be non-zero: a SrcPixels can be a
// slice of a larger plane. When Color32Arr returns a non-nil slice, the
// direct view must satisfy
//
//	arr[(y-Rect().Y)*ScanlineStride() + (x-Rect().X)] == Color32At(x, y)
//
// for every (x, y) inside Rect(), and remain valid for the duration of
// the draw call.
//
// Thread safety: implementations must tolerate concurrent reads; the
// engine samples from multiple workers at once.
type SrcPixels interface {
	// Rect returns the bounding rectangle of the image.
	Rect() Rect

	// Width returns Rect().XSpan.
	Width() int32

	// Height returns Rect().YSpan.
	Height() int32

	// ScanlineStride returns the number of color words per source row
	// in the direct view. It is >= Width() and only meaningful when
	// Color32Arr returns a non-nil slice.
	ScanlineStride() int32

	// Color32Arr returns a direct contiguous view of the pixels, or nil
	// when the image has no such view.
	Color32Arr() []Color32

	// Color32At returns the color at (x, y), which must be inside
	// Rect().
	Color32At(x, y int32) Color32
}

// RowDrawer commits horizontal runs of packed colors to a destination.
//
// DrawRow writes length colors from buf[off:off+length] onto destination
// row dstY starting at column dstX. The sink performs no clipping and no
// blending: the engine only hands it coordinates inside the clipped
// destination, in the sink's expected color representation.
//
// buf may be a scratch buffer reused for the next row, or (on an opt-in
// fast path) a slice of the caller's own source array; sinks must not
// retain it past the call.
//
// Thread safety: rows written by concurrent chunks are disjoint, but
// row order across chunks is unspecified; sinks must accept writes in
// any order.
type RowDrawer interface {
	DrawRow(buf []Color32, off int, dstX, dstY int32, length int32)
}
