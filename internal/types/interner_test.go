package types

import (
	"testing"

	"cogen/internal/ast"
	"cogen/internal/irtypes"
)

func TestInternBasicTypesAreSingletons(t *testing.T) {
	in := NewInterner()
	b := ast.NewBuilder(8)

	a := in.Intern(b.BasicType(ast.TI32))
	c := in.Intern(b.BasicType(ast.TI32))
	if a != c {
		t.Error("interning the same basic type code twice should return the same handle")
	}
	if got, want := a.String(), "i32"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInternNilIsVoid(t *testing.T) {
	in := NewInterner()
	if got := in.Intern(nil); got != irtypes.Void {
		t.Errorf("Intern(nil) = %v, want Void", got)
	}
}

func TestInternTupleDeduplicatesByStructure(t *testing.T) {
	in := NewInterner()
	b := ast.NewBuilder(8)

	t1 := in.Intern(b.TupleType(b.BasicType(ast.TI32), b.BasicType(ast.TBool)))
	t2 := in.Intern(b.TupleType(b.BasicType(ast.TI32), b.BasicType(ast.TBool)))
	if t1 != t2 {
		t.Error("two tuples with the same element types should intern to the same handle")
	}
	if got, want := t1.String(), "{ i32, i1 }"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInternStructIsNamedAndMemoizedOnNode(t *testing.T) {
	in := NewInterner()
	b := ast.NewBuilder(8)

	structNode := b.StructType("Point",
		ast.StructFieldType{Name: "x", Type: b.BasicType(ast.TI32)},
		ast.StructFieldType{Name: "y", Type: b.BasicType(ast.TI32)},
	)

	h1 := in.Intern(structNode)
	h2 := in.Intern(structNode)
	if h1 != h2 {
		t.Error("interning the same struct node twice should reuse the memoized handle")
	}
	if got, want := h1.String(), "%Point"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if len(h1.Fields) != 2 {
		t.Fatalf("len(Fields) = %d, want 2", len(h1.Fields))
	}
	if h1.FieldIndex("y") != 1 {
		t.Errorf("FieldIndex(y) = %d, want 1", h1.FieldIndex("y"))
	}
}

func TestInternRecursiveFunType(t *testing.T) {
	in := NewInterner()
	b := ast.NewBuilder(8)

	// A self-referential function type: no parameters, and a result type
	// that is the function type itself.
	selfFn := b.FunType(nil)
	selfFn.FunType.Result = selfFn

	h := in.Intern(selfFn)
	if h.Result != h {
		t.Error("recursive function type should intern to a handle that refers to itself")
	}
}

func TestInternPanicsOnNonTypeNode(t *testing.T) {
	in := NewInterner()
	b := ast.NewBuilder(8)
	lit := b.IntLit(b.BasicType(ast.TI32), 5)

	defer func() {
		if recover() == nil {
			t.Fatal("Intern on a non-type node kind should panic")
		}
	}()
	in.Intern(lit)
}

func TestBuiltin(t *testing.T) {
	in := NewInterner()
	if got, want := in.Builtin(ast.TBool).String(), "i1"; got != want {
		t.Errorf("Builtin(TBool) = %q, want %q", got, want)
	}
}
