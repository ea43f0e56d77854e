package layout

// ID is a stable 32-bit element identifier. The zero value means "no id".
type ID uint32

// step folds one byte into a one-at-a-time hash state.
func step(h uint32, b byte) uint32 {
	h += uint32(b)
	h += h << 10
	h ^= h >> 6
	return h
}

// finalize applies the rolled finalization and reserves 0 for "no id".
func finalize(h uint32) ID {
	h += h << 3
	h ^= h >> 11
	h += h << 15
	if h == 0 {
		h = 1
	}
	return ID(h)
}

func hashBytes(s string, seed uint32) uint32 {
	h := seed
	for i := 0; i < len(s); i++ {
		h = step(h, s[i])
	}
	return h
}

// HashString hashes a name into an ID. Identical strings always produce
// identical IDs.
func HashString(s string) ID {
	return finalize(hashBytes(s, 0))
}

// HashIndexed hashes a name together with a numeric index. All indices share
// the same base string but produce distinct IDs, which suits list items.
func HashIndexed(s string, index uint32) ID {
	h := hashBytes(s, 0)
	h = step(h, byte(index))
	h = step(h, byte(index>>8))
	h = step(h, byte(index>>16))
	h = step(h, byte(index>>24))
	return finalize(h)
}

// HashScoped hashes a name using the parent's ID as the seed, giving
// hierarchical uniqueness without string concatenation.
func HashScoped(s string, parent ID) ID {
	return finalize(hashBytes(s, uint32(parent)))
}
