package scaledraw

import "fmt"

// Package-level algorithm instances behind the convenience entry
// points. Both are stateless between chunks and safe to share.
var (
	defaultNearest = NewNearestAlgo()
	defaultBicubic = NewBicubicAlgo()
)

// Draw scales srcRect of src onto dstRect, restricted to dstClip,
// delivering destination rows to rd with the given algorithm.
//
// A nil par runs serially; a nil h assumes straight-alpha A8R8G8B8
// sources.
//
// Draw returns nil without drawing when srcRect is empty or when
// dstRect does not overlap dstClip. It fails with ErrInvalidArgument
// when a rectangle has a negative span or overflowing edge arithmetic,
// or when a non-empty srcRect is not contained in src's bounds.
//
// On success, every pixel of dstRect's intersection with dstClip has
// been delivered to rd exactly once; pixels outside it are untouched.
// The call returns only after all parallel chunks have completed.
func Draw(par Parallelizer, h ColorTypeHelper, algo Algo, src SrcPixels,
	srcRect, dstRect, dstClip Rect, rd RowDrawer) error {

	if par == nil {
		par = Serial{}
	}
	if h == nil {
		h = PremulARGBHelper{}
	}

	for _, r := range [...]Rect{srcRect, dstRect, dstClip} {
		if err := checkRect(r); err != nil {
			return err
		}
	}
	if srcRect.IsEmpty() {
		return nil
	}
	if !src.Rect().Contains(srcRect) {
		return fmt.Errorf("src rect %v outside source bounds %v: %w",
			srcRect, src.Rect(), ErrInvalidArgument)
	}
	dstClipped := dstRect.Intersect(dstClip)
	if dstClipped.IsEmpty() {
		return nil
	}

	// A grow on one axis with a shrink on the other cannot run through
	// a single anisotropic kernel pass without either blurring the
	// shrunk axis or skipping samples on the grown one. Route through
	// an intermediate: shrink first, then grow.
	wDown := dstRect.XSpan < srcRect.XSpan
	hDown := dstRect.YSpan < srcRect.YSpan
	wUp := dstRect.XSpan > srcRect.XSpan
	hUp := dstRect.YSpan > srcRect.YSpan
	if (wUp && hDown) || (wDown && hUp) {
		interW := srcRect.XSpan
		if wDown {
			interW = dstRect.XSpan
		}
		interH := srcRect.YSpan
		if hDown {
			interH = dstRect.YSpan
		}
		interRect := RectOf(dstRect.X, dstRect.Y, interW, interH)
		Logger().Debug("scaledraw: mixed-direction draw",
			"src", srcRect.String(), "inter", interRect.String(), "dst", dstRect.String())

		buf, err := getPlaneBuf(interRect.Area())
		if err != nil {
			return err
		}
		defer planeScratch.Put(buf)
		inter := newPixelBufOver(interRect, interRect.XSpan, buf)

		// The intermediate plane is owned by this call. Phase 1's
		// dispatcher join fully completes before phase 2 samples the
		// plane, which is the required fence between the phases.
		if err := drawStaged(par, h, algo, src, srcRect, interRect, interRect, inter); err != nil {
			return err
		}
		return drawStaged(par, h, algo, inter, interRect, dstRect, dstClipped, rd)
	}

	return drawStaged(par, h, algo, src, srcRect, dstRect, dstClipped, rd)
}

// DrawNearest is Draw with the default nearest-neighbor algorithm.
func DrawNearest(par Parallelizer, h ColorTypeHelper, src SrcPixels,
	srcRect, dstRect, dstClip Rect, rd RowDrawer) error {
	return Draw(par, h, defaultNearest, src, srcRect, dstRect, dstClip, rd)
}

// DrawBicubic is Draw with the default bicubic algorithm.
func DrawBicubic(par Parallelizer, h ColorTypeHelper, src SrcPixels,
	srcRect, dstRect, dstClip Rect, rd RowDrawer) error {
	return Draw(par, h, defaultBicubic, src, srcRect, dstRect, dstClip, rd)
}
