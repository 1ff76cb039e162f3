package scaledraw

import (
	"encoding/binary"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/cespare/xxhash/v2"
)

func TestDrawValidation(t *testing.T) {
	src := NewPixelBuf(RectOf(0, 0, 10, 10))
	full := RectOf(0, 0, 20, 20)

	tests := []struct {
		name    string
		srcRect Rect
		dstRect Rect
		dstClip Rect
		wantErr bool
		wantOp  bool // whether any pixel should be written
	}{
		{"empty src is a no-op", RectOf(2, 2, 0, 5), full, full, false, false},
		{"src outside bounds", RectOf(5, 5, 10, 10), full, full, true, false},
		{"src negative span", RectOf(0, 0, -3, 4), full, full, true, false},
		{"dst negative span", RectOf(0, 0, 4, 4), RectOf(0, 0, -1, 5), full, true, false},
		{"clip overflow", RectOf(0, 0, 4, 4), full, RectOf(math.MaxInt32 - 1, 0, 5, 5), true, false},
		{"disjoint clip is a no-op", RectOf(0, 0, 4, 4), RectOf(0, 0, 10, 10), RectOf(50, 50, 5, 5), false, false},
		{"empty dst is a no-op", RectOf(0, 0, 4, 4), RectOf(0, 0, 0, 0), full, false, false},
		{"valid draw", RectOf(0, 0, 4, 4), RectOf(0, 0, 8, 8), full, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecordingDrawer()
			err := DrawNearest(nil, nil, src, tt.srcRect, tt.dstRect, tt.dstClip, rec)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("err = %v, want ErrInvalidArgument", err)
				}
			} else if err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
			if tt.wantOp && rec.pixelCount() == 0 {
				t.Error("no pixels written")
			}
			if !tt.wantOp && rec.pixelCount() != 0 {
				t.Errorf("%d pixels written, want none", rec.pixelCount())
			}
		})
	}
}

// phaseRecordingAlgo records the rectangles of each DrawChunk pass.
type phaseRecordingAlgo struct {
	*BicubicAlgo
	mu     sync.Mutex
	passes [][2]Rect // srcRect, dstRect
}

func (a *phaseRecordingAlgo) DrawChunk(h ColorTypeHelper, src SrcPixels, srcRect, dstRect, dstClipped Rect,
	yStart, yEnd int32, rd RowDrawer) error {
	a.mu.Lock()
	if n := len(a.passes); n == 0 || a.passes[n-1] != ([2]Rect{srcRect, dstRect}) {
		a.passes = append(a.passes, [2]Rect{srcRect, dstRect})
	}
	a.mu.Unlock()
	return a.BicubicAlgo.DrawChunk(h, src, srcRect, dstRect, dstClipped, yStart, yEnd, rd)
}

func TestDrawMixedDirectionRouting(t *testing.T) {
	// 4x2 -> 2x4 shrinks X and grows Y: the composer must first scale
	// down to a 2x2 intermediate, then scale that up to 2x4.
	src := NewPixelBuf(RectOf(0, 0, 4, 2))
	for y := int32(0); y < 2; y++ {
		for x := int32(0); x < 4; x++ {
			src.SetColor32At(x, y, PackARGB32(0xFF, uint8(60*x), uint8(100*y), 0))
		}
	}

	algo := &phaseRecordingAlgo{BicubicAlgo: NewBicubicAlgo()}
	dst := RectOf(0, 0, 2, 4)
	out := NewPixelBuf(dst)
	if err := Draw(nil, nil, algo, src, src.Rect(), dst, dst, out); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if len(algo.passes) != 2 {
		t.Fatalf("got %d passes, want 2: %v", len(algo.passes), algo.passes)
	}
	inter := RectOf(0, 0, 2, 2)
	if algo.passes[0][0] != src.Rect() || algo.passes[0][1] != inter {
		t.Errorf("phase 1 = %v -> %v, want %v -> %v",
			algo.passes[0][0], algo.passes[0][1], src.Rect(), inter)
	}
	if algo.passes[1][0] != inter || algo.passes[1][1] != dst {
		t.Errorf("phase 2 = %v -> %v, want %v -> %v",
			algo.passes[1][0], algo.passes[1][1], inter, dst)
	}
}

func TestDrawClippedCoverage(t *testing.T) {
	// A 10x10 source drawn onto a 100x100 destination clipped to a
	// 10x10 window: exactly 100 pixels, all inside the clip, each once.
	src := NewPixelBuf(RectOf(0, 0, 10, 10))
	dstRect := RectOf(0, 0, 100, 100)
	clip := RectOf(25, 25, 10, 10)

	for _, tc := range []struct {
		name string
		draw func(rd RowDrawer) error
	}{
		{"nearest", func(rd RowDrawer) error {
			return DrawNearest(nil, nil, src, src.Rect(), dstRect, clip, rd)
		}},
		{"bicubic", func(rd RowDrawer) error {
			return DrawBicubic(nil, nil, src, src.Rect(), dstRect, clip, rd)
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := newRecordingDrawer()
			if err := tc.draw(rec); err != nil {
				t.Fatalf("draw: %v", err)
			}
			if rec.pixelCount() != 100 {
				t.Errorf("wrote %d pixels, want 100", rec.pixelCount())
			}
			for pos, n := range rec.writes {
				if n != 1 {
					t.Errorf("pixel %v written %d times", pos, n)
				}
				if pos[0] < 25 || pos[0] > 34 || pos[1] < 25 || pos[1] > 34 {
					t.Errorf("pixel %v outside clip", pos)
				}
			}
			for _, row := range rec.rows {
				if row.dstX < 25 || row.dstX+row.length > 35 || row.dstY < 25 || row.dstY > 34 {
					t.Errorf("row write (%d, %d, len %d) outside clip", row.dstX, row.dstY, row.length)
				}
			}
		})
	}
}

// digestOf hashes a plane's pixels for bit-exact comparison.
func digestOf(p *PixelBuf) uint64 {
	d := xxhash.New()
	var word [4]byte
	for _, c := range p.Color32Arr() {
		binary.LittleEndian.PutUint32(word[:], uint32(c))
		_, _ = d.Write(word[:])
	}
	return d.Sum64()
}

func TestDrawParallelDeterminism(t *testing.T) {
	// Output must be bit-exact regardless of worker count, for both a
	// checkerboard nearest upscale and a translucent bicubic upscale,
	// including a mixed-direction case.
	checker := pixelBufOf(t, [][]Color32{
		{0xFF000000, 0xFFFFFFFF},
		{0xFFFFFFFF, 0xFF000000},
	})
	translucent := pixelBufOf(t, [][]Color32{
		{0x00FF0000, 0xFFFFFFFF},
		{0x80332211, 0x40FFEEDD},
	})
	big := NewPixelBuf(RectOf(0, 0, 64, 48))
	for i := range big.Color32Arr() {
		big.Color32Arr()[i] = Color32(0xFF000000 | uint32(i*65537))
	}

	cases := []struct {
		name    string
		algo    Algo
		src     *PixelBuf
		dstRect Rect
	}{
		{"nearest upscale", NewNearestAlgo(), checker, RectOf(0, 0, 200, 200)},
		{"bicubic upscale", NewBicubicAlgo(), translucent, RectOf(0, 0, 160, 160)},
		{"bicubic mixed direction", NewBicubicAlgo(), big, RectOf(0, 0, 20, 150)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Low thresholds so even small draws split into many
			// chunks.
			switch a := tc.algo.(type) {
			case *NearestAlgo:
				a.DstAreaThreshold = 512
			case *BicubicAlgo:
				a.DstAreaThreshold = 512
			}

			var want uint64
			for i, workers := range []int{1, 2, 4, 8} {
				par := NewWorkerParallelizer(workers)
				out := NewPixelBuf(tc.dstRect)
				err := Draw(par, nil, tc.algo, tc.src, tc.src.Rect(), tc.dstRect, tc.dstRect, out)
				par.Close()
				if err != nil {
					t.Fatalf("workers=%d: %v", workers, err)
				}
				got := digestOf(out)
				if i == 0 {
					want = got
					continue
				}
				if got != want {
					t.Fatalf("workers=%d: digest %016x, want %016x", workers, got, want)
				}
			}
		})
	}
}

func TestDrawSerialAndParallelAgree(t *testing.T) {
	src := NewPixelBuf(RectOf(0, 0, 33, 21))
	for i := range src.Color32Arr() {
		src.Color32Arr()[i] = Color32(uint32(i) * 2246822519)
	}

	algo := NewBicubicAlgo()
	algo.DstAreaThreshold = 256

	serial := NewPixelBuf(RectOf(0, 0, 97, 65))
	if err := Draw(Serial{}, nil, algo, src, src.Rect(), serial.Rect(), serial.Rect(), serial); err != nil {
		t.Fatalf("serial: %v", err)
	}

	par := NewWorkerParallelizer(4)
	defer par.Close()
	parallel := NewPixelBuf(RectOf(0, 0, 97, 65))
	if err := Draw(par, nil, algo, src, src.Rect(), parallel.Rect(), parallel.Rect(), parallel); err != nil {
		t.Fatalf("parallel: %v", err)
	}

	if digestOf(serial) != digestOf(parallel) {
		t.Fatal("serial and parallel outputs differ")
	}
}
