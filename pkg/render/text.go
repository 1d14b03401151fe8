package render

import (
	"strings"

	"github.com/blastbay/mazelib/pkg/maze"
)

// TextOption configures text rendering.
type TextOption func(*textRenderer)

type textRenderer struct {
	wall rune
	open rune
}

// WithASCII renders walls as '#' and open space as ' ' for terminals
// without good Unicode support.
func WithASCII() TextOption {
	return func(r *textRenderer) {
		r.wall = '#'
		r.open = ' '
	}
}

// WithRunes overrides the wall and open glyphs.
func WithRunes(wall, open rune) TextOption {
	return func(r *textRenderer) {
		r.wall = wall
		r.open = open
	}
}

// Text renders a blockwise maze as one line per grid row, top to bottom.
// Each glyph is doubled horizontally so cells come out roughly square in
// a monospace font. The default glyphs are Unicode full blocks.
func Text(v maze.BlockView, opts ...TextOption) string {
	r := textRenderer{wall: '█', open: ' '}
	for _, opt := range opts {
		opt(&r)
	}

	var sb strings.Builder
	cols, rows := v.Cols(), v.Rows()
	sb.Grow(int(rows) * (2*int(cols) + 1))

	for y := uint32(0); y < rows; y++ {
		for x := uint32(0); x < cols; x++ {
			g := r.open
			if v.Wall(x, y) {
				g = r.wall
			}
			sb.WriteRune(g)
			sb.WriteRune(g)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
