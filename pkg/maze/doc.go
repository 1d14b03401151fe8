// Package maze generates random, simply-connected mazes over a rectangular
// grid using the growing tree algorithm.
//
// # Overview
//
// Generation is deterministic: the same seed and configuration always
// produce the same maze, byte for byte, on every platform. The package
// never allocates; all working space and the final result live in a single
// caller-supplied buffer, partitioned internally so the temporary frontier
// worklist and the finished maze never collide.
//
// # Formats
//
// Mazes come in two formats, selected per call:
//
//   - Compact: one byte per cell, a bitmask of West, East, North and South
//     indicating the directions in which it is possible to move.
//   - Blockwise: a doubled-resolution grid of size (2w+1) x (2h+1) where
//     walls occupy their own cells; each byte is 0 for open space or 1 for
//     a wall.
//
// # Usage
//
// The high-level pattern is: size, allocate, generate, inspect.
//
//	size := maze.RequiredBufferSize(width, height, false)
//	buf := make([]byte, size)
//	n := maze.Generate(width, height, seed, 30, false, buf)
//	cell := buf[maze.CellIndex(x, y, height)]
//	if maze.Dir(cell)&maze.East != 0 {
//	    // open passage to the east
//	}
//
// Cells are addressed column-major: the cell at (x, y) lives at index
// x*height + y.
//
// # Maze character
//
// The structural character of a maze is controlled by the cell-selection
// policy, exposed through the Selector interface. Always selecting the
// newest frontier cell produces long, winding corridors; selecting
// uniformly at random produces many short dead ends. The bundled
// Threshold selector mixes the two with a single percentage knob.
//
// # Failure reporting
//
// All generation entry points report failure through a single zero return:
// zero dimensions, an undersized or nil buffer, a missing random source or
// selector, and a selector that violates its protocol all yield 0 bytes
// used. A nonzero return is always a complete, valid maze.
package maze
