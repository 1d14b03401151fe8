package maze

// expandBlockwise rewrites the compact connection grid as a
// doubled-resolution wall/open grid over the head of output and returns
// its size, (2w+1)*(2h+1).
//
// grid aliases the tail of output; the regions are disjoint, and grid is
// only read after the wall fill, so the rewrite is safe in place.
func expandBlockwise(width, height uint32, grid, output []byte) uint64 {
	newWidth := 2*uint64(width) + 1
	newHeight := 2*uint64(height) + 1
	total := newWidth * newHeight

	for i := uint64(0); i < total; i++ {
		output[i] = 1
	}

	// Every original cell opens its doubled position; a set south or east
	// bit additionally opens the wall cell between it and that neighbor.
	// Doubled coordinates of interior opens never touch the border.
	for oldX, newX := uint32(0), uint32(1); oldX < width; oldX, newX = oldX+1, newX+2 {
		for oldY, newY := uint32(0), uint32(1); oldY < height; oldY, newY = oldY+1, newY+2 {
			cell := Dir(grid[CellIndex(oldX, oldY, height)])
			output[CellIndex(newX, newY, uint32(newHeight))] = 0
			if cell&South != 0 {
				output[CellIndex(newX, newY+1, uint32(newHeight))] = 0
			}
			if cell&East != 0 {
				output[CellIndex(newX+1, newY, uint32(newHeight))] = 0
			}
		}
	}

	return total
}
