package irtypes

import (
	"fmt"
	"strconv"
	"sync"
)

// Value is an emitted IR value: its textual SSA handle together with its
// materialized type. Builder entry points (BuildRValue/BuildPlace) return
// Values; a Node's IRVal memoization slot holds one once built.
type Value struct {
	Text string // "%3", "5", "true", "null", "@g_counter"
	Type *Type
}

// IsConst reports whether Text is a literal constant rather than an SSA
// register reference (no '%' prefix).
func (v Value) IsConst() bool {
	return len(v.Text) == 0 || v.Text[0] != '%'
}

// ConstInt builds a literal integer constant value of the given type.
func ConstInt(t *Type, v int64) Value {
	return Value{Text: strconv.FormatInt(v, 10), Type: t}
}

// ConstFloat builds a literal float constant value, rendered the way LLVM's
// textual IR expects (hex form is unnecessary for the values this builder
// ever materializes directly).
func ConstFloat(t *Type, v float64) Value {
	return Value{Text: strconv.FormatFloat(v, 'g', -1, 64), Type: t}
}

// ConstBool builds a literal i1 constant.
func ConstBool(v bool) Value {
	if v {
		return Value{Text: "true", Type: Bool}
	}
	return Value{Text: "false", Type: Bool}
}

// Null builds the null pointer constant for the given pointer-shaped type.
func Null(t *Type) Value {
	return Value{Text: "null", Type: t}
}

// Zero returns the zero value for any materialized type: 0 for ints and
// floats, false for bool, null for pointers, and zeroinitializer for structs
// and every other kind (spec §9 "per-IR-type zero-value").
//
// Zero values are cached per *Type handle.
func Zero(t *Type) Value {
	if t == nil {
		return Value{Text: "zeroinitializer", Type: Void}
	}
	if v, ok := zeroCache.get(t); ok {
		return v
	}
	v := computeZero(t)
	zeroCache.put(t, v)
	return v
}

func computeZero(t *Type) Value {
	switch t.Kind {
	case KInt:
		return ConstInt(t, 0)
	case KFloat:
		return ConstFloat(t, 0)
	case KBool:
		return ConstBool(false)
	case KPtr:
		return Null(t)
	case KStruct:
		return Value{Text: "zeroinitializer", Type: t}
	default:
		return Value{Text: "zeroinitializer", Type: t}
	}
}

// zeroValueCache memoizes Zero() by type identity, guarded for the
// spec-sanctioned case of concurrent independent builds sharing no arena
// but, defensively, possibly sharing interned type handles.
type zeroValueCache struct {
	mu sync.RWMutex
	m  map[*Type]Value
}

var zeroCache = newZeroValueCache()

func newZeroValueCache() *zeroValueCache {
	return &zeroValueCache{m: make(map[*Type]Value)}
}

func (c *zeroValueCache) get(t *Type) (Value, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[t]
	return v, ok
}

func (c *zeroValueCache) put(t *Type, v Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[t] = v
}

// String renders "<type> <value>" the way an LLVM-IR operand list item is
// written, e.g. "i32 5".
func (v Value) String() string {
	return fmt.Sprintf("%s %s", v.Type.String(), v.Text)
}
