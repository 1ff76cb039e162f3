package scaledraw

import (
	"sync"
	"testing"
)

// pixelBufOf builds a plane with origin (0, 0) from row-major colors.
func pixelBufOf(t *testing.T, rows [][]Color32) *PixelBuf {
	t.Helper()
	h := int32(len(rows))
	w := int32(len(rows[0]))
	p := NewPixelBuf(RectOf(0, 0, w, h))
	for y, row := range rows {
		if int32(len(row)) != w {
			t.Fatalf("ragged row %d: len %d, want %d", y, len(row), w)
		}
		for x, c := range row {
			p.SetColor32At(int32(x), int32(y), c)
		}
	}
	return p
}

// noArrSrc hides a plane's direct array, forcing the per-pixel access
// path.
type noArrSrc struct {
	*PixelBuf
}

func (s noArrSrc) Color32Arr() []Color32 { return nil }

// strictSrc fails the test on any access outside a rectangle, to prove
// edge-extend clamping never reads out of range.
type strictSrc struct {
	*PixelBuf
	t     *testing.T
	allow Rect
}

func (s strictSrc) Color32Arr() []Color32 { return nil }

func (s strictSrc) Color32At(x, y int32) Color32 {
	if x < s.allow.X || x > s.allow.XMax() || y < s.allow.Y || y > s.allow.YMax() {
		s.t.Errorf("source access (%d, %d) outside %v", x, y, s.allow)
		return 0
	}
	return s.PixelBuf.Color32At(x, y)
}

// recordingDrawer records every DrawRow call and tracks per-pixel write
// counts and values.
//
// Safe for concurrent rows, like any engine-facing sink must be.
type recordingDrawer struct {
	mu     sync.Mutex
	rows   []recordedRow
	writes map[[2]int32]int
	vals   map[[2]int32]Color32
}

type recordedRow struct {
	dstX, dstY, length int32
}

func newRecordingDrawer() *recordingDrawer {
	return &recordingDrawer{
		writes: make(map[[2]int32]int),
		vals:   make(map[[2]int32]Color32),
	}
}

func (d *recordingDrawer) DrawRow(buf []Color32, off int, dstX, dstY int32, length int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rows = append(d.rows, recordedRow{dstX: dstX, dstY: dstY, length: length})
	for i := int32(0); i < length; i++ {
		key := [2]int32{dstX + i, dstY}
		d.writes[key]++
		d.vals[key] = buf[off+int(i)]
	}
}

// pixelCount returns the number of distinct pixels written.
func (d *recordingDrawer) pixelCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.writes)
}

// rawPremulHelper treats the native representation as already
// premultiplied: both conversions are the identity. Tests use it to
// observe the engine's premultiplied arithmetic directly.
type rawPremulHelper struct {
	PremulARGBHelper
}

func (rawPremulHelper) AsPremul32FromType(c Color32) Color32 { return c }
func (rawPremulHelper) AsTypeFromPremul32(c Color32) Color32 { return c }
