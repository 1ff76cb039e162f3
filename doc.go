// Package scaledraw provides a parallel rectangular image-scaling engine.
//
// # Overview
//
// scaledraw renders a source pixel rectangle, scaled, into a destination
// rectangle with clipping. It handles upscaling and downscaling across
// arbitrary integer spans, in multiple resampling qualities
// (nearest-neighbor, bicubic), with work partitioned across a supplied
// parallel executor.
//
// # Quick Start
//
//	import "github.com/gogpu/scaledraw"
//
//	src := scaledraw.FromImage(img)
//	dst := scaledraw.NewPixelBuf(scaledraw.RectOf(0, 0, 800, 600))
//
//	par := scaledraw.NewWorkerParallelizer(0) // 0 = GOMAXPROCS
//	defer par.Close()
//
//	err := scaledraw.DrawBicubic(par, nil, src,
//	    src.Rect(), dst.Rect(), dst.Rect(), dst)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Rect, Color32, SrcPixels, RowDrawer, Algo, Draw*
//   - internal/parallel: shared-queue worker pool behind Parallelizer
//   - internal/scratch: pooled scratch buffers for per-chunk state
//
// Scaling routes through up to three layers: a mixed-direction composer
// (shrink on one axis, grow on the other, via an intermediate plane), an
// iterative staging driver (large downscales decomposed into halving
// steps), and a dispatcher that splits the destination into disjoint
// row bands claimed by parallel workers.
//
// # Coordinate System
//
// Rectangles are (X, Y, XSpan, YSpan) with the origin at the top-left,
// X increasing right and Y increasing down. Source rectangles may have a
// non-zero origin. Destination sampling uses pixel-center mapping, so a
// 1:1 scale is an exact identity.
//
// # Concurrency
//
// A draw call is synchronous: it returns after every submitted chunk has
// completed. Chunks write disjoint destination rows; the source is only
// read. Algo implementations must be safe for concurrent DrawChunk calls.
package scaledraw
