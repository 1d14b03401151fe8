package render

import (
	"encoding/json"

	"github.com/blastbay/mazelib/pkg/maze"
)

// Params records the inputs that produced a maze. They are embedded in
// JSON documents so a consumer can regenerate the identical maze, and
// they double as the cache key material for rendered artifacts.
type Params struct {
	Width     uint32 `json:"width"`
	Height    uint32 `json:"height"`
	Seed      uint64 `json:"seed"`
	Threshold int8   `json:"threshold"`
	Blockwise bool   `json:"blockwise"`
}

// Document is the JSON form of a compact maze: the generation parameters
// plus one direction bitmask per cell in column-major order
// (index = x*height + y, bits W=1 E=2 N=4 S=8).
type Document struct {
	Params
	Cells []uint8 `json:"cells"`
}

// JSON encodes a compact maze and its parameters as an indented JSON
// document.
func JSON(v maze.View, p Params) ([]byte, error) {
	doc := Document{Params: p, Cells: make([]uint8, 0, int(v.Width)*int(v.Height))}
	for x := uint32(0); x < v.Width; x++ {
		for y := uint32(0); y < v.Height; y++ {
			doc.Cells = append(doc.Cells, uint8(v.At(x, y)))
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}
