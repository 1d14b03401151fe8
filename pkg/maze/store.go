package maze

import "encoding/binary"

// indexStore is a fixed-width packed integer array over a raw byte region.
// The element width is chosen once per generation from the grid size, so a
// 200x200 maze spends two bytes per frontier slot instead of eight.
//
// Values are stored little-endian. The store performs no bounds management
// beyond the backing slice; callers track the live element count.
type indexStore struct {
	buf  []byte
	elem uint8
}

func newIndexStore(buf []byte, elem uint8) indexStore {
	return indexStore{buf: buf, elem: elem}
}

// get returns the value of slot i.
func (s indexStore) get(i uint64) uint64 {
	switch s.elem {
	case 1:
		return uint64(s.buf[i])
	case 2:
		return uint64(binary.LittleEndian.Uint16(s.buf[i*2:]))
	case 4:
		return uint64(binary.LittleEndian.Uint32(s.buf[i*4:]))
	}
	return binary.LittleEndian.Uint64(s.buf[i*8:])
}

// set writes v into slot i.
func (s indexStore) set(i, v uint64) {
	switch s.elem {
	case 1:
		s.buf[i] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(s.buf[i*2:], uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(s.buf[i*4:], uint32(v))
	default:
		binary.LittleEndian.PutUint64(s.buf[i*8:], v)
	}
}

// remove deletes slot i from a store currently holding size elements,
// shifting the later elements down one slot so insertion order is kept.
func (s indexStore) remove(i, size uint64) {
	e := uint64(s.elem)
	copy(s.buf[i*e:], s.buf[(i+1)*e:size*e])
}
