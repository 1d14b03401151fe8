package maze

// Dir is a bitmask of carved passage directions for one compact cell.
// A set bit means it is possible to move from the cell in that direction.
type Dir uint8

// Direction bits. These values match the on-disk compact format and must
// not change.
const (
	West  Dir = 1
	East  Dir = 2
	North Dir = 4
	South Dir = 8
)

// Opposite returns the direction pointing back at the caller: West for
// East, North for South, and vice versa.
func (d Dir) Opposite() Dir {
	switch d {
	case West:
		return East
	case East:
		return West
	case North:
		return South
	case South:
		return North
	}
	return 0
}

// String returns a short human-readable name for a single direction bit,
// or a combined form like "W|S" for a mask.
func (d Dir) String() string {
	names := [...]struct {
		bit  Dir
		name string
	}{{West, "W"}, {East, "E"}, {North, "N"}, {South, "S"}}

	s := ""
	for _, n := range names {
		if d&n.bit == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	if s == "" {
		return "none"
	}
	return s
}
