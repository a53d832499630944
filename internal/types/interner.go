// Package types computes canonical typeids for AST type-class nodes and
// interns them into materialized internal/irtypes handles (spec §3.3,
// §4.1). At most one *irtypes.Type handle exists per distinct typeid
// (spec invariant 2).
package types

import (
	"fmt"
	"strings"
	"sync"

	"cogen/internal/ast"
	"cogen/internal/irtypes"
)

// Interner hands out materialized type handles for AST type nodes, caching
// by both node identity (via Node.IRVal, to break self-referential cycles
// through recursive function types, spec §4.2.4) and by a structural typeid
// key (so two independently-built nodes describing the same shape collapse
// to one handle, spec §8: "the same typeid always yields the same handle").
type Interner struct {
	mu       sync.RWMutex
	byKey    map[string]*irtypes.Type
	builtins map[ast.BasicTypeCode]*irtypes.Type
}

// NewInterner builds an Interner pre-seeded with handles for every basic
// type code, the way the teacher's NewInterner seeds primitive Builtins.
func NewInterner() *Interner {
	in := &Interner{
		byKey:    make(map[string]*irtypes.Type, 64),
		builtins: make(map[ast.BasicTypeCode]*irtypes.Type, 16),
	}
	for _, code := range basicCodes {
		h := buildBasicHandle(code)
		in.byKey[basicKey(code)] = h
		in.builtins[code] = h
	}
	return in
}

var basicCodes = []ast.BasicTypeCode{
	ast.TBool, ast.TI8, ast.TU8, ast.TI16, ast.TU16, ast.TI32, ast.TU32,
	ast.TI64, ast.TU64, ast.TF32, ast.TF64, ast.TInt, ast.TUint, ast.TNil, ast.TIdeal,
}

// platformWidth is the integer width int and uint lower to. It is fixed at
// 64: the driver's BuildContext.IntWidth (co.toml's int_width) is not passed
// to the interner.
const platformWidth = 64

func buildBasicHandle(code ast.BasicTypeCode) *irtypes.Type {
	switch code {
	case ast.TBool:
		return irtypes.Bool
	case ast.TI8:
		return irtypes.Int(8, true)
	case ast.TU8:
		return irtypes.Int(8, false)
	case ast.TI16:
		return irtypes.Int(16, true)
	case ast.TU16:
		return irtypes.Int(16, false)
	case ast.TI32:
		return irtypes.Int(32, true)
	case ast.TU32:
		return irtypes.Int(32, false)
	case ast.TI64:
		return irtypes.Int(64, true)
	case ast.TU64:
		return irtypes.Int(64, false)
	case ast.TF32:
		return irtypes.Float(32)
	case ast.TF64:
		return irtypes.Float(64)
	case ast.TInt:
		return irtypes.Int(platformWidth, true)
	case ast.TUint:
		return irtypes.Int(platformWidth, false)
	case ast.TNil, ast.TIdeal:
		return irtypes.Ptr
	default:
		return irtypes.Void
	}
}

func basicKey(code ast.BasicTypeCode) string {
	return "b:" + code.String()
}

// Builtin returns the pre-seeded handle for a basic type code.
func (in *Interner) Builtin(code ast.BasicTypeCode) *irtypes.Type {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.builtins[code]
}

// Intern returns the materialized handle for a type-class AST node,
// building and caching it on first use. A nil node interns to void (spec
// §4.1: "The handle returned for nil type or absent type is the primitive
// void handle").
func (in *Interner) Intern(n *ast.Node) *irtypes.Type {
	if n == nil {
		return irtypes.Void
	}
	if h, ok := n.IRVal.(*irtypes.Type); ok {
		return h
	}
	switch n.Kind {
	case ast.KindBasicType:
		h := in.Builtin(n.BasicType.Code)
		n.IRVal = h
		return h
	case ast.KindTupleType:
		return in.internTuple(n)
	case ast.KindStructType:
		return in.internStruct(n)
	case ast.KindFunType:
		return in.internFun(n)
	default:
		panic(fmt.Sprintf("types: Intern called on non-type node kind %s", n.Kind))
	}
}

func (in *Interner) internTuple(n *ast.Node) *irtypes.Type {
	elems := make([]*irtypes.Type, len(n.TupleType.Elems))
	for i, e := range n.TupleType.Elems {
		elems[i] = in.Intern(e)
	}
	fields := make([]irtypes.Field, len(elems))
	for i, e := range elems {
		fields[i] = irtypes.Field{Name: fmt.Sprintf("_%d", i), Type: e}
	}
	key := tupleKey(elems)

	in.mu.Lock()
	defer in.mu.Unlock()
	if h, ok := in.byKey[key]; ok {
		n.IRVal = h
		return h
	}
	h := irtypes.Struct("", fields)
	in.byKey[key] = h
	n.IRVal = h
	return h
}

func tupleKey(elems []*irtypes.Type) string {
	var b strings.Builder
	b.WriteString("tup(")
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

// internStruct interns a named struct type. The handle is registered under
// its key, and memoized onto the node, BEFORE its fields are walked: a
// struct field may reference a function type that in turn takes this same
// struct by pointer, and the cycle must resolve to the same handle (spec
// §4.2.4's "FunType must be pre-registered before recursing" generalizes to
// any aggregate that can appear in its own signature).
func (in *Interner) internStruct(n *ast.Node) *irtypes.Type {
	key := "struct:" + n.StructType.Name

	in.mu.Lock()
	if h, ok := in.byKey[key]; ok {
		in.mu.Unlock()
		n.IRVal = h
		return h
	}
	h := irtypes.Struct(n.StructType.Name, nil)
	in.byKey[key] = h
	in.mu.Unlock()

	n.IRVal = h
	fields := make([]irtypes.Field, len(n.StructType.Fields))
	for i, f := range n.StructType.Fields {
		fields[i] = irtypes.Field{Name: f.Name, Type: in.Intern(f.Type)}
	}
	h.Fields = fields
	return h
}

// internFun interns a function-signature type. The handle is allocated and
// memoized onto the node, with empty Params/Result, BEFORE recursing into
// them (spec §4.2.4): a recursive function type reachable through one of
// its own parameter or result types must see the same in-progress handle
// rather than recurse forever.
func (in *Interner) internFun(n *ast.Node) *irtypes.Type {
	h := irtypes.Fn(nil, nil)
	n.IRVal = h

	params := make([]*irtypes.Type, len(n.FunType.Params))
	for i, p := range n.FunType.Params {
		params[i] = in.Intern(p)
	}
	result := in.Intern(n.FunType.Result)

	h.Params = params
	h.Result = result

	key := funKey(h)
	in.mu.Lock()
	defer in.mu.Unlock()
	if existing, ok := in.byKey[key]; ok && existing != h {
		n.IRVal = existing
		return existing
	}
	in.byKey[key] = h
	return h
}

func funKey(h *irtypes.Type) string {
	var b strings.Builder
	b.WriteString("fn(")
	for i, p := range h.Params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.String())
	}
	b.WriteString(")->")
	b.WriteString(h.Result.String())
	return b.String()
}

// Count returns the number of typeid keys interned so far, mainly useful
// for test assertions and build diagnostics. nil and ideal share the pointer
// handle under two keys, so this can exceed the number of distinct handles.
func (in *Interner) Count() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.byKey)
}
