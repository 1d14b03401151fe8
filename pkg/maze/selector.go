package maze

import "github.com/blastbay/mazelib/pkg/prng"

// Selector chooses which frontier cell the carving engine extends next.
// It is the single knob that determines a maze's structural character.
//
// Select receives the current frontier size (always >= 2; a frontier of
// one is selected directly) and must return an index in [0, count). It may
// draw from src; those draws are part of the deterministic sequence, so a
// given selector and seed always reproduce the same maze. Returning an
// index >= count is a protocol violation and aborts generation.
type Selector interface {
	Select(count uint64, src *prng.Source) uint64
}

// SelectorFunc adapts a plain function to the Selector interface.
type SelectorFunc func(count uint64, src *prng.Source) uint64

// Select calls f.
func (f SelectorFunc) Select(count uint64, src *prng.Source) uint64 {
	return f(count, src)
}

// Tail returns a selector that always extends the most recently visited
// cell. This is the depth-first bias: long, winding corridors with few
// branches. It draws nothing from the random source.
func Tail() Selector {
	return SelectorFunc(func(count uint64, _ *prng.Source) uint64 {
		return count - 1
	})
}

// Uniform returns a selector that picks a frontier cell uniformly at
// random. Mazes come out with high branching and many short dead ends.
func Uniform() Selector {
	return SelectorFunc(func(count uint64, src *prng.Source) uint64 {
		return src.UintN(count)
	})
}

// Threshold returns the bundled percentage-mix selector: with probability
// percent in a hundred it picks uniformly at random, otherwise it picks
// the tail. percent <= 0 behaves exactly like Tail and draws nothing from
// the source; percent >= 100 is effectively Uniform.
//
// The interpolation range between 0 and 100 controls the "river factor"
// of the maze: low values give long corridors, high values give heavy
// branching.
func Threshold(percent int8) Selector {
	return SelectorFunc(func(count uint64, src *prng.Source) uint64 {
		if percent > 0 && int8(src.UintN(101)) < percent {
			return src.UintN(count)
		}
		return count - 1
	})
}
