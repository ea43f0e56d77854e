package layout

import "unsafe"

// Arena is a fixed-capacity bump allocator for per-frame data. Reset is O(1)
// and makes the same backing memory available again; there is no individual
// free. Everything allocated from it is invalidated by the next Reset.
type Arena struct {
	buf []byte
	off int
}

// NewArena creates an arena with the given byte capacity.
func NewArena(capacity int) *Arena {
	return &Arena{buf: make([]byte, capacity)}
}

// Reset invalidates all allocations and rewinds the arena.
func (a *Arena) Reset() {
	a.off = 0
}

// Len returns the number of bytes currently allocated.
func (a *Arena) Len() int {
	return a.off
}

// Cap returns the arena's total byte capacity.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// Alloc reserves n bytes and returns the slice, or a CapacityError if the
// arena is full.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if a.off+n > len(a.buf) {
		return nil, &CapacityError{Resource: ResourceArena, Limit: len(a.buf)}
	}
	p := a.buf[a.off : a.off+n : a.off+n]
	a.off += n
	return p, nil
}

// String copies s into the arena and returns a view of the copy. The result
// shares no memory with the input, so callers may reuse their buffers after
// declaring; it is only valid until the next Reset.
func (a *Arena) String(s string) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	p, err := a.Alloc(len(s))
	if err != nil {
		return "", err
	}
	copy(p, s)
	return unsafe.String(&p[0], len(p)), nil
}
