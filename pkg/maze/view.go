package maze

import "errors"

var (
	// ErrBufferTooSmall is returned by NewView and NewBlockView when the
	// buffer cannot hold a maze of the stated dimensions.
	ErrBufferTooSmall = errors.New("buffer too small for maze dimensions")

	// ErrZeroDimension is returned when width or height is zero.
	ErrZeroDimension = errors.New("maze dimensions must be non-zero")
)

// View is a read-only decoder over a generated compact maze. It does not
// copy the buffer; the caller must keep it alive and unmodified.
type View struct {
	Width  uint32
	Height uint32
	cells  []byte
}

// NewView wraps the leading width*height bytes of buf, as produced by a
// compact-mode Generate call.
func NewView(width, height uint32, buf []byte) (View, error) {
	if width == 0 || height == 0 {
		return View{}, ErrZeroDimension
	}
	n := uint64(width) * uint64(height)
	if uint64(len(buf)) < n {
		return View{}, ErrBufferTooSmall
	}
	return View{Width: width, Height: height, cells: buf[:n]}, nil
}

// At returns the passage bitmask of the cell at (x, y).
func (v View) At(x, y uint32) Dir {
	return Dir(v.cells[CellIndex(x, y, v.Height)])
}

// CanMove reports whether a passage is carved from (x, y) in direction d.
func (v View) CanMove(x, y uint32, d Dir) bool {
	return v.At(x, y)&d != 0
}

// BlockView is a read-only decoder over a generated blockwise maze.
// Coordinates are in doubled space: Cols() x Rows() cells of 0 (open) or
// 1 (wall).
type BlockView struct {
	mazeWidth  uint32
	mazeHeight uint32
	cells      []byte
}

// NewBlockView wraps the leading (2w+1)*(2h+1) bytes of buf, as produced
// by a blockwise-mode Generate call for a maze of width x height cells.
func NewBlockView(width, height uint32, buf []byte) (BlockView, error) {
	if width == 0 || height == 0 {
		return BlockView{}, ErrZeroDimension
	}
	n := (2*uint64(width) + 1) * (2*uint64(height) + 1)
	if uint64(len(buf)) < n {
		return BlockView{}, ErrBufferTooSmall
	}
	return BlockView{mazeWidth: width, mazeHeight: height, cells: buf[:n]}, nil
}

// Cols returns the doubled grid width, 2*w+1.
func (v BlockView) Cols() uint32 { return 2*v.mazeWidth + 1 }

// Rows returns the doubled grid height, 2*h+1.
func (v BlockView) Rows() uint32 { return 2*v.mazeHeight + 1 }

// Wall reports whether the doubled-space cell at (x, y) is a wall.
func (v BlockView) Wall(x, y uint32) bool {
	return v.cells[CellIndex(x, y, v.Rows())] != 0
}
