package parser

// Interner implements string interning to reduce memory usage.
//
// Many strings repeat throughout a configuration file:
// - Key names shared across sections (e.g., "enabled", "host", "timeout")
// - Section names in files with repeated section blocks
// - Common values (e.g., "true", "false", "0")
//
// By maintaining a pool of canonical strings, we can reuse the same string
// instance for all occurrences, reducing memory allocations.
type Interner struct {
	pool map[string]string
}

// NewInterner creates a new string interner with the given initial capacity.
func NewInterner(capacity int) *Interner {
	return &Interner{
		pool: make(map[string]string, capacity),
	}
}

// InternBytes converts a byte slice to a string and interns it. This is the
// common case when materializing names from the scanner's line slices.
func (i *Interner) InternBytes(b []byte) string {
	// The temporary string for the map lookup is optimized away by the
	// compiler when the entry already exists.
	s := string(b)
	if interned, ok := i.pool[s]; ok {
		return interned
	}
	i.pool[s] = s
	return s
}

// Size returns the number of unique strings in the intern pool.
// Useful for diagnostics and testing.
func (i *Interner) Size() int {
	return len(i.pool)
}

// Reset clears the intern pool. Typically you want to keep the pool across
// multiple files to maximize interning efficiency.
func (i *Interner) Reset() {
	i.pool = make(map[string]string)
}
