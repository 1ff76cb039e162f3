package scaledraw

import (
	"image"
	"image/color"
)

// Compile-time interface checks.
var (
	_ SrcPixels = (*PixelBuf)(nil)
	_ RowDrawer = (*PixelBuf)(nil)
)

// PixelBuf is a rectangular plane of packed A8R8G8B8 colors.
//
// It implements both SrcPixels (read side) and RowDrawer (write side,
// copy blend only), which makes it the natural backing for staging
// intermediates, for the mixed-direction composer's intermediate plane,
// and for callers that just want an in-memory destination.
//
// Thread safety: concurrent reads are safe. Concurrent DrawRow calls
// are safe only for disjoint rows, which is exactly what the engine
// guarantees.
type PixelBuf struct {
	rect   Rect
	stride int32
	arr    []Color32
}

// NewPixelBuf allocates a plane covering rect, initially all zero
// (transparent black).
func NewPixelBuf(rect Rect) *PixelBuf {
	return &PixelBuf{
		rect:   rect,
		stride: rect.XSpan,
		arr:    make([]Color32, rect.Area()),
	}
}

// newPixelBufOver wraps existing storage without copying. The slice must
// hold at least stride*rect.YSpan color words.
func newPixelBufOver(rect Rect, stride int32, arr []Color32) *PixelBuf {
	return &PixelBuf{rect: rect, stride: stride, arr: arr}
}

// Rect returns the bounding rectangle of the plane.
func (p *PixelBuf) Rect() Rect { return p.rect }

// Width returns the plane width in pixels.
func (p *PixelBuf) Width() int32 { return p.rect.XSpan }

// Height returns the plane height in pixels.
func (p *PixelBuf) Height() int32 { return p.rect.YSpan }

// ScanlineStride returns the number of color words per row.
func (p *PixelBuf) ScanlineStride() int32 { return p.stride }

// Color32Arr returns the direct view of the pixels.
func (p *PixelBuf) Color32Arr() []Color32 { return p.arr }

// index returns the array index of (x, y). Coordinates must be inside
// the plane's rectangle.
func (p *PixelBuf) index(x, y int32) int {
	return int(y-p.rect.Y)*int(p.stride) + int(x-p.rect.X)
}

// Color32At returns the color at (x, y).
func (p *PixelBuf) Color32At(x, y int32) Color32 {
	return p.arr[p.index(x, y)]
}

// SetColor32At sets the color at (x, y).
func (p *PixelBuf) SetColor32At(x, y int32, c Color32) {
	p.arr[p.index(x, y)] = c
}

// DrawRow copies length colors from buf[off:] onto row dstY starting at
// column dstX. The run must lie inside the plane's rectangle.
func (p *PixelBuf) DrawRow(buf []Color32, off int, dstX, dstY int32, length int32) {
	i := p.index(dstX, dstY)
	copy(p.arr[i:i+int(length)], buf[off:off+int(length)])
}

// FromImage converts an image to a PixelBuf in native (straight alpha)
// A8R8G8B8, with the plane's origin at (0, 0) regardless of the image's
// bounds origin.
func FromImage(img image.Image) *PixelBuf {
	bounds := img.Bounds()
	w := int32(bounds.Dx())
	h := int32(bounds.Dy())
	p := NewPixelBuf(RectOf(0, 0, w, h))
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+int(x), bounds.Min.Y+int(y))).(color.NRGBA)
			p.arr[p.index(x, y)] = PackARGB32(c.A, c.R, c.G, c.B)
		}
	}
	return p
}

// ToNRGBA converts the plane to a straight-alpha stdlib image with
// bounds (0, 0, Width, Height).
func (p *PixelBuf) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(p.rect.XSpan), int(p.rect.YSpan)))
	for y := int32(0); y < p.rect.YSpan; y++ {
		for x := int32(0); x < p.rect.XSpan; x++ {
			c := p.arr[p.index(p.rect.X+x, p.rect.Y+y)]
			i := img.PixOffset(int(x), int(y))
			img.Pix[i+0] = c.Red8()
			img.Pix[i+1] = c.Green8()
			img.Pix[i+2] = c.Blue8()
			img.Pix[i+3] = c.Alpha8()
		}
	}
	return img
}
