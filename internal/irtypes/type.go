// Package irtypes holds the materialized IR type and value handles the
// type interner and IR builder pass around. It knows nothing about the Co
// AST; it only knows how to spell LLVM-style textual IR.
package irtypes

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// Kind discriminates the shape of a materialized IR type.
type Kind uint8

const (
	KVoid Kind = iota
	KInt
	KFloat
	KBool
	KPtr
	KStruct
	KFn
)

// Field is one named, ordered member of a struct type.
type Field struct {
	Name string
	Type *Type
}

// Type is a materialized IR type handle (spec §4.1 "materialized IR type
// handle"). Exactly one Type value exists per distinct typeid once interned
// (spec invariant 2, §8).
type Type struct {
	Kind   Kind
	Width  int  // bit width, for KInt/KFloat
	Signed bool // signedness, for KInt

	// StructName is the IR identifier used for a named struct, e.g. "Point"
	// renders as "%Point".
	StructName string
	Fields     []Field

	// Fn-only.
	Params []*Type
	Result *Type // nil means void
}

// Void is the singleton handle for the absence of a value (spec §4.1: "The
// handle returned for nil type or absent type is the primitive void
// handle").
var Void = &Type{Kind: KVoid}

// Bool is the canonical 1-bit boolean handle.
var Bool = &Type{Kind: KBool, Width: 1}

// Int returns a handle for a signed or unsigned integer of the given width.
// Width must fit a uint16 (LLVM integer widths never approach that range in
// practice; the narrowing guards against a corrupt or attacker-controlled
// typeid rather than any real program).
func Int(width int, signed bool) *Type {
	if _, err := safecast.Conv[uint16](width); err != nil {
		panic(fmt.Errorf("irtypes: int width out of range: %w", err))
	}
	return &Type{Kind: KInt, Width: width, Signed: signed}
}

// Float returns a handle for a 32- or 64-bit float.
func Float(width int) *Type {
	return &Type{Kind: KFloat, Width: width}
}

// Ptr is the single opaque pointer handle; LLVM's modern textual IR spells
// every pointer "ptr" regardless of pointee, so one shared handle suffices.
var Ptr = &Type{Kind: KPtr}

// Struct returns a handle for a named aggregate with ordered fields.
func Struct(name string, fields []Field) *Type {
	return &Type{Kind: KStruct, StructName: name, Fields: fields}
}

// Fn returns a handle describing a function's signature (used only to
// compute the `define`/`declare` line; functions are never first-class
// values in the emitted text, calls always use a direct-by-name target or
// a function pointer spelled "ptr").
func Fn(result *Type, params []*Type) *Type {
	return &Type{Kind: KFn, Result: result, Params: params}
}

// FieldIndex returns the declaration-order index of a named field, or -1.
func (t *Type) FieldIndex(name string) int {
	for i, f := range t.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// String renders the LLVM-IR textual spelling of the type, e.g. "i32",
// "double", "ptr", "%Point", "void".
func (t *Type) String() string {
	if t == nil {
		return "void"
	}
	switch t.Kind {
	case KVoid:
		return "void"
	case KBool:
		return "i1"
	case KInt:
		return fmt.Sprintf("i%d", t.Width)
	case KFloat:
		if t.Width == 32 {
			return "float"
		}
		return "double"
	case KPtr:
		return "ptr"
	case KStruct:
		if t.StructName != "" {
			return "%" + t.StructName
		}
		return t.literalStructBody()
	case KFn:
		return t.sigText()
	default:
		return "void"
	}
}

// LiteralBody renders the `{ t0, t1, ... }` body used in `type %Name = ...`
// definitions and anonymous-struct literals, regardless of whether the type
// is named.
func (t *Type) LiteralBody() string {
	return t.literalStructBody()
}

func (t *Type) literalStructBody() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.Type.String()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (t *Type) sigText() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = sigOperandText(p)
	}
	return fmt.Sprintf("%s (%s)", sigOperandText(t.Result), strings.Join(parts, ", "))
}

// sigOperandText spells a parameter or result type inside a signature; a
// function-typed one is a function pointer, spelled "ptr".
func sigOperandText(t *Type) string {
	if t != nil && t.Kind == KFn {
		return "ptr"
	}
	return t.String()
}

// IsVoid reports whether the handle is the void type.
func (t *Type) IsVoid() bool { return t == nil || t.Kind == KVoid }
