package scaledraw

import (
	"fmt"

	"github.com/gogpu/scaledraw/internal/scratch"
)

// Scratch pools shared by all draws. Index tables and row buffers are
// width-sized; planes back staging intermediates and the
// mixed-direction buffer, so their size is validated before leasing.
var (
	intScratch   scratch.Pool[int32]
	colorScratch scratch.Pool[Color32]
	planeScratch scratch.Pool[Color32]
)

// getPlaneBuf leases a plane of area pixels, failing when the request
// exceeds the scratch element cap.
func getPlaneBuf(area int64) ([]Color32, error) {
	if err := scratch.CheckLen(area); err != nil {
		return nil, fmt.Errorf("scaledraw: plane of %d pixels: %w", area, err)
	}
	return planeScratch.Get(int(area)), nil
}
