package maze

import "math"

// elemBytes returns the frontier element width for the given dimensions:
// the smallest of 1, 2, 4 or 8 bytes able to index every cell of the grid.
func elemBytes(width, height uint32) uint8 {
	cells := uint64(width) * uint64(height)
	switch {
	case cells < math.MaxUint8:
		return 1
	case cells < math.MaxUint16:
		return 2
	case cells < math.MaxUint32:
		return 4
	}
	return 8
}

// RequiredBufferSize returns the buffer size in bytes needed to generate a
// maze of the given dimensions and format. It returns 0 if width or height
// is zero.
//
// The size covers both the final result and the temporary workspace used
// during generation: the compact grid borrows trailing space for the
// frontier worklist, while the larger blockwise output region hosts its
// own temporaries at the head of the buffer.
func RequiredBufferSize(width, height uint32, blockwise bool) uint64 {
	if width == 0 || height == 0 {
		return 0
	}
	elem := uint64(elemBytes(width, height))
	size := uint64(width) * uint64(height) * elem
	if blockwise {
		newWidth := 2*uint64(width) + 1
		newHeight := 2*uint64(height) + 1
		size += newWidth * newHeight
	} else {
		size += size / elem
	}
	return size
}

// CellIndex returns the byte offset of the cell at (x, y) in a compact
// maze of the given height. Cells are stored column-major: x*height + y.
//
// For a blockwise maze, pass the doubled height 2*h+1 and doubled
// coordinates.
func CellIndex(x, y, height uint32) uint64 {
	return uint64(x)*uint64(height) + uint64(y)
}
