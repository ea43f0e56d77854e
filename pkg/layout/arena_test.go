package layout

import (
	"errors"
	"testing"
	"unsafe"
)

func TestArena_AllocAndReset(t *testing.T) {
	a := NewArena(64)
	p, err := a.Alloc(40)
	if err != nil {
		t.Fatalf("Alloc(40) error = %v", err)
	}
	if len(p) != 40 || a.Len() != 40 {
		t.Errorf("len(p) = %d, a.Len() = %d, want 40, 40", len(p), a.Len())
	}

	if _, err := a.Alloc(40); err == nil {
		t.Error("Alloc past capacity should fail")
	}

	a.Reset()
	if a.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", a.Len())
	}
	if _, err := a.Alloc(64); err != nil {
		t.Errorf("Alloc(64) after Reset error = %v", err)
	}
}

func TestArena_AllocCapacityError(t *testing.T) {
	a := NewArena(8)
	_, err := a.Alloc(9)
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("Alloc(9) error = %v, want CapacityError", err)
	}
	if capErr.Resource != ResourceArena {
		t.Errorf("Resource = %v, want %v", capErr.Resource, ResourceArena)
	}
	if capErr.Limit != 8 {
		t.Errorf("Limit = %d, want 8", capErr.Limit)
	}
}

func TestArena_StringCopiesInput(t *testing.T) {
	a := NewArena(64)
	src := []byte("mutable")
	s, err := a.String(unsafe.String(&src[0], len(src)))
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	src[0] = 'X'
	if s != "mutable" {
		t.Errorf("arena string = %q, want %q (must not alias the input)", s, "mutable")
	}
}

func TestArena_EmptyStringCostsNothing(t *testing.T) {
	a := NewArena(4)
	s, err := a.String("")
	if err != nil || s != "" {
		t.Fatalf("String(\"\") = %q, %v, want \"\", nil", s, err)
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}
