package irtypes

import "testing"

func TestTypeString(t *testing.T) {
	point := Struct("Point", []Field{
		{Name: "x", Type: Int(32, true)},
		{Name: "y", Type: Int(32, true)},
	})
	anon := Struct("", []Field{
		{Name: "_0", Type: Int(64, true)},
		{Name: "_1", Type: Float(64)},
	})

	tests := []struct {
		name string
		typ  *Type
		want string
	}{
		{"void", Void, "void"},
		{"bool", Bool, "i1"},
		{"i8", Int(8, true), "i8"},
		{"u32", Int(32, false), "i32"},
		{"f32", Float(32), "float"},
		{"f64", Float(64), "double"},
		{"ptr", Ptr, "ptr"},
		{"named struct", point, "%Point"},
		{"anonymous struct", anon, "{ i64, double }"},
		{"fn sig", Fn(Bool, []*Type{Int(32, true), Ptr}), "i1 (i32, ptr)"},
		{"nil type", nil, "void"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldIndex(t *testing.T) {
	point := Struct("Point", []Field{
		{Name: "x", Type: Int(32, true)},
		{Name: "y", Type: Int(32, true)},
	})
	if idx := point.FieldIndex("y"); idx != 1 {
		t.Errorf("FieldIndex(y) = %d, want 1", idx)
	}
	if idx := point.FieldIndex("z"); idx != -1 {
		t.Errorf("FieldIndex(z) = %d, want -1", idx)
	}
}

func TestLiteralBody(t *testing.T) {
	point := Struct("Point", []Field{
		{Name: "x", Type: Int(32, true)},
		{Name: "y", Type: Bool},
	})
	if got, want := point.LiteralBody(), "{ i32, i1 }"; got != want {
		t.Errorf("LiteralBody() = %q, want %q", got, want)
	}
}

func TestIsVoid(t *testing.T) {
	if !Void.IsVoid() {
		t.Error("Void.IsVoid() = false, want true")
	}
	if !(*Type)(nil).IsVoid() {
		t.Error("nil.IsVoid() = false, want true")
	}
	if Bool.IsVoid() {
		t.Error("Bool.IsVoid() = true, want false")
	}
}

func TestIntWidthOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Int(1<<20, true) did not panic on out-of-range width")
		}
	}()
	Int(1<<20, true)
}
