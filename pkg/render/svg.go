package render

import (
	"bytes"
	"fmt"

	"github.com/blastbay/mazelib/pkg/maze"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellSize   int
	wallColor  string
	floorColor string
}

// WithCellSize sets the side length in pixels of one blockwise cell
// (default 8).
func WithCellSize(px int) SVGOption {
	return func(r *svgRenderer) { r.cellSize = px }
}

// WithColors sets the wall and floor fill colors (any SVG color string).
func WithColors(wall, floor string) SVGOption {
	return func(r *svgRenderer) {
		r.wallColor = wall
		r.floorColor = floor
	}
}

// SVG renders a blockwise maze as a standalone SVG image. Horizontal wall
// runs are merged into single rectangles to keep the output small.
func SVG(v maze.BlockView, opts ...SVGOption) []byte {
	r := svgRenderer{cellSize: 8, wallColor: "#1a1a2e", floorColor: "#f5f5f0"}
	for _, opt := range opts {
		opt(&r)
	}

	cols, rows := int(v.Cols()), int(v.Rows())
	w := cols * r.cellSize
	h := rows * r.cellSize

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", w, h, r.floorColor)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; {
			if !v.Wall(uint32(x), uint32(y)) {
				x++
				continue
			}
			run := x
			for run < cols && v.Wall(uint32(run), uint32(y)) {
				run++
			}
			fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
				x*r.cellSize, y*r.cellSize, (run-x)*r.cellSize, r.cellSize, r.wallColor)
			x = run
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
