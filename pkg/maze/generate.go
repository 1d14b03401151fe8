package maze

import "github.com/blastbay/mazelib/pkg/prng"

// Generate produces a maze of the given dimensions into output and returns
// the number of leading bytes of output holding the result: width*height
// for a compact maze, (2w+1)*(2h+1) for a blockwise one. It returns 0 on
// any precondition failure (zero dimension, nil or undersized buffer);
// output must be at least RequiredBufferSize bytes.
//
// thresholdPercent sets the selection mix (see Threshold): 0 yields pure
// depth-first corridors, 100 yields fully random selection. Values above
// 100 are clamped to 100; a negative value asks for the percentage itself
// to be drawn at random, once, from the seeded source.
func Generate(width, height uint32, seed uint64, thresholdPercent int8, blockwise bool, output []byte) uint64 {
	src := prng.New(seed)

	if thresholdPercent < 0 {
		thresholdPercent = int8(src.UintN(101))
	} else if thresholdPercent > 100 {
		thresholdPercent = 100
	}

	return GenerateWith(width, height, src, Threshold(thresholdPercent), blockwise, output)
}

// GenerateWith is the low-level entry point: it takes a pre-seeded random
// source and an arbitrary cell-selection policy in place of a threshold.
// The buffer and return contract are the same as Generate's.
//
// If sel returns an index outside the frontier, generation aborts and 0 is
// returned; the buffer contents are then undefined and must be discarded.
func GenerateWith(width, height uint32, src *prng.Source, sel Selector, blockwise bool, output []byte) uint64 {
	required := RequiredBufferSize(width, height, blockwise)
	if required == 0 || src == nil || sel == nil {
		return 0
	}
	if uint64(len(output)) < required {
		return 0
	}

	elem := elemBytes(width, height)
	cellCount := uint64(width) * uint64(height)

	// Partition the buffer. The compact grid is the final result, so it
	// goes first with the frontier behind it. A blockwise result is larger
	// than the compact intermediate, so the frontier sits at the head and
	// the temporary grid borrows the tail of the output region; both are
	// dead by the time the expansion pass overwrites them.
	var grid []byte
	var frontier indexStore
	if blockwise {
		grid = output[required-cellCount : required]
		frontier = newIndexStore(output[:cellCount*uint64(elem)], elem)
	} else {
		grid = output[:cellCount]
		frontier = newIndexStore(output[cellCount:required], elem)
	}

	for i := range grid {
		grid[i] = 0
	}

	// Seed the frontier with one uniformly random cell. The y coordinate
	// is drawn before x; swapping the draws changes every maze.
	startY := uint32(src.UintN(uint64(height)))
	startX := uint32(src.UintN(uint64(width)))
	frontier.set(0, CellIndex(startX, startY, height))
	size := uint64(1)

	dirs := [4]Dir{West, East, North, South}

	for size > 0 {
		var slot uint64
		if size > 1 {
			slot = sel.Select(size, src)
			if slot >= size {
				return 0 // selector protocol violation
			}
		}

		current := frontier.get(slot)
		x := uint32(current / uint64(height))
		y := uint32(current % uint64(height))

		// Fisher-Yates shuffle so no direction is preferred.
		for i := uint64(3); i > 0; i-- {
			j := src.UintN(i + 1)
			dirs[i], dirs[j] = dirs[j], dirs[i]
		}

		carved := false
		for _, d := range dirs {
			var nx, ny uint32
			var opposite Dir
			switch d {
			case West:
				if x == 0 {
					continue
				}
				nx, ny, opposite = x-1, y, East
			case East:
				if x == width-1 {
					continue
				}
				nx, ny, opposite = x+1, y, West
			case North:
				if y == 0 {
					continue
				}
				nx, ny, opposite = x, y-1, South
			default: // South
				if y == height-1 {
					continue
				}
				nx, ny, opposite = x, y+1, North
			}

			neighbor := CellIndex(nx, ny, height)
			if grid[neighbor] != 0 {
				continue
			}

			// Carve a two-way passage and put the neighbor on the
			// frontier. Only one neighbor is carved per visit.
			grid[current] |= byte(d)
			grid[neighbor] |= byte(opposite)
			frontier.set(size, neighbor)
			size++
			carved = true
			break
		}

		if !carved {
			// Dead end: drop the cell, preserving frontier order.
			frontier.remove(slot, size)
			size--
		}
	}

	if blockwise {
		return expandBlockwise(width, height, grid, output)
	}
	return cellCount
}
