package evaluator

import "fmt"

// Location is an opaque store address. It is itself a value, so it can
// flow through programs as data and alias the cell it names.
type Location int

func (l Location) Type() ObjectType { return LOCATION_OBJ }
func (l Location) Inspect() string  { return fmt.Sprintf("#<loc %d>", int(l)) }

// Store is the mutable location-indexed heap. Allocation is
// append-only, assignment overwrites in place, and locations stay
// valid for the whole run: FUN has no deallocation story.
//
// The evaluator is the store's only writer and all writes are
// sequenced by the single evaluation order, so no locking is needed.
type Store struct {
	cells    []Object
	reserved []bool
}

func NewStore() *Store {
	return &Store{}
}

// Alloc allocates a fresh location holding val.
func (s *Store) Alloc(val Object) Location {
	loc := Location(len(s.cells))
	s.cells = append(s.cells, val)
	s.reserved = append(s.reserved, false)
	return loc
}

// Reserve allocates a fresh location with no value yet. Reading it
// before a Write fails; letrec uses this for its first phase.
func (s *Store) Reserve() Location {
	loc := Location(len(s.cells))
	s.cells = append(s.cells, nil)
	s.reserved = append(s.reserved, true)
	return loc
}

// Write overwrites the cell at loc. It reports false for locations the
// store never handed out.
func (s *Store) Write(loc Location, val Object) bool {
	if int(loc) < 0 || int(loc) >= len(s.cells) {
		return false
	}
	s.cells[int(loc)] = val
	s.reserved[int(loc)] = false
	return true
}

// Read returns the current value at loc. It reports false for unknown
// locations and for reserved cells that were never written.
func (s *Store) Read(loc Location) (Object, bool) {
	if int(loc) < 0 || int(loc) >= len(s.cells) {
		return nil, false
	}
	if s.reserved[int(loc)] {
		return nil, false
	}
	return s.cells[int(loc)], true
}

// Len returns the number of allocated locations.
func (s *Store) Len() int { return len(s.cells) }

// Snapshot returns a copy of the current cell contents, for drivers
// and tests that compare final stores.
func (s *Store) Snapshot() []Object {
	out := make([]Object, len(s.cells))
	copy(out, s.cells)
	return out
}
