package ast

// BasicTypeCode enumerates the primitive type codes (spec §3.2).
type BasicTypeCode uint8

const (
	TBool BasicTypeCode = iota
	TI8
	TU8
	TI16
	TU16
	TI32
	TU32
	TI64
	TU64
	TF32
	TF64
	TInt  // platform-width signed integer (spec §6)
	TUint // platform-width unsigned integer (spec §6)
	TNil
	TIdeal
)

func (c BasicTypeCode) String() string {
	switch c {
	case TBool:
		return "bool"
	case TI8:
		return "i8"
	case TU8:
		return "u8"
	case TI16:
		return "i16"
	case TU16:
		return "u16"
	case TI32:
		return "i32"
	case TU32:
		return "u32"
	case TI64:
		return "i64"
	case TU64:
		return "u64"
	case TF32:
		return "f32"
	case TF64:
		return "f64"
	case TInt:
		return "int"
	case TUint:
		return "uint"
	case TNil:
		return "nil"
	case TIdeal:
		return "ideal"
	default:
		return "?"
	}
}

// IsSigned reports whether the basic type code is a signed integer type.
func (c BasicTypeCode) IsSigned() bool {
	switch c {
	case TI8, TI16, TI32, TI64, TInt:
		return true
	default:
		return false
	}
}

// IsInt reports whether the basic type code is any integer type.
func (c BasicTypeCode) IsInt() bool {
	switch c {
	case TI8, TU8, TI16, TU16, TI32, TU32, TI64, TU64, TInt, TUint:
		return true
	default:
		return false
	}
}

// IsFloat reports whether the basic type code is a float type.
func (c BasicTypeCode) IsFloat() bool { return c == TF32 || c == TF64 }

// BasicTypeData backs KindBasicType (spec §3.2).
type BasicTypeData struct {
	Code BasicTypeCode
}

// TupleTypeData backs KindTupleType: an ordered sequence of element types.
type TupleTypeData struct {
	Elems []*Node // each a type-class Node
}

// StructFieldType is one named field of a StructType, in declaration order.
type StructFieldType struct {
	Name string
	Type *Node
}

// StructTypeData backs KindStructType: an ordered sequence of named fields,
// identified by Name for the IR struct identifier (spec §3.2, §4.2.9).
type StructTypeData struct {
	Name   string
	Fields []StructFieldType
}

// FieldIndex returns the declaration-order index of a named field, or -1.
func (d *StructTypeData) FieldIndex(name string) int {
	for i, f := range d.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// FunTypeData backs KindFunType: a parameter tuple (possibly empty) and a
// single, possibly-nil, result type (spec §3.2).
type FunTypeData struct {
	Params []*Node // each a type-class Node
	Result *Node   // nullable
}
