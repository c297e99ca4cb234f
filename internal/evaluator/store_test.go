package evaluator

import "testing"

func TestStoreAllocReadWrite(t *testing.T) {
	s := NewStore()

	a := s.Alloc(intVal(1))
	b := s.Alloc(intVal(2))
	if a == b {
		t.Fatal("Alloc returned the same location twice")
	}

	v, ok := s.Read(a)
	if !ok || v.Inspect() != "1" {
		t.Fatalf("Read(a) = %v, %t", v, ok)
	}

	if !s.Write(a, intVal(9)) {
		t.Fatal("Write to a live location failed")
	}
	v, _ = s.Read(a)
	if v.Inspect() != "9" {
		t.Fatalf("after Write, Read(a) = %s", v.Inspect())
	}
	v, _ = s.Read(b)
	if v.Inspect() != "2" {
		t.Fatalf("Write(a) disturbed b: %s", v.Inspect())
	}
}

func TestStoreReservedCells(t *testing.T) {
	s := NewStore()
	loc := s.Reserve()

	if _, ok := s.Read(loc); ok {
		t.Fatal("reserved cell must not be readable before a Write")
	}
	if !s.Write(loc, intVal(5)) {
		t.Fatal("Write to a reserved cell failed")
	}
	v, ok := s.Read(loc)
	if !ok || v.Inspect() != "5" {
		t.Fatalf("after Write, Read = %v, %t", v, ok)
	}
}

func TestStoreRejectsUnknownLocations(t *testing.T) {
	s := NewStore()
	if _, ok := s.Read(Location(0)); ok {
		t.Fatal("Read of a never-allocated location succeeded")
	}
	if s.Write(Location(7), intVal(1)) {
		t.Fatal("Write to a never-allocated location succeeded")
	}
	if s.Write(Location(-1), intVal(1)) {
		t.Fatal("Write to a negative location succeeded")
	}
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	loc := s.Alloc(intVal(1))

	snap := s.Snapshot()
	s.Write(loc, intVal(2))

	if snap[0].Inspect() != "1" {
		t.Fatal("snapshot changed after a later Write")
	}
}

func TestEnvironmentLookupAndShadowing(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", Location(0))
	outer.Set("y", Location(1))

	inner := NewEnclosedEnvironment(outer)
	inner.Set("x", Location(2))

	if loc, ok := inner.Get("x"); !ok || loc != Location(2) {
		t.Fatalf("inner x = %v, %t", loc, ok)
	}
	if loc, ok := inner.Get("y"); !ok || loc != Location(1) {
		t.Fatalf("inner y = %v, %t", loc, ok)
	}
	if loc, ok := outer.Get("x"); !ok || loc != Location(0) {
		t.Fatalf("outer x = %v, %t; inner frames must not leak out", loc, ok)
	}
	if _, ok := inner.Get("z"); ok {
		t.Fatal("unbound name resolved")
	}
}
