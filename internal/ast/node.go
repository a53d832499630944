// Package ast defines the typed AST model consumed by the IR builder
// (spec §3). Every node in the tree is read-only at codegen time except
// Node.IRVal, which the builder sets at most once per node per build.
package ast

import "cogen/internal/source"

// Kind discriminates the variant a Node holds.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Literals.
	KindIntLit
	KindFloatLit
	KindBoolLit

	// Bindings.
	KindVar
	KindId

	// Structure.
	KindFun
	KindBlock
	KindCall
	KindTypeCast
	KindReturn
	KindStructCons
	KindSelector
	KindIndex
	KindAssign
	KindBinOp
	KindIf
	KindTuple

	// Type nodes (spec §3.2). Every Kind from here on belongs to the
	// "type-class" referenced by Node.Type.
	KindBasicType
	KindTupleType
	KindStructType
	KindFunType
)

func (k Kind) String() string {
	switch k {
	case KindIntLit:
		return "IntLit"
	case KindFloatLit:
		return "FloatLit"
	case KindBoolLit:
		return "BoolLit"
	case KindVar:
		return "Var"
	case KindId:
		return "Id"
	case KindFun:
		return "Fun"
	case KindBlock:
		return "Block"
	case KindCall:
		return "Call"
	case KindTypeCast:
		return "TypeCast"
	case KindReturn:
		return "Return"
	case KindStructCons:
		return "StructCons"
	case KindSelector:
		return "Selector"
	case KindIndex:
		return "Index"
	case KindAssign:
		return "Assign"
	case KindBinOp:
		return "BinOp"
	case KindIf:
		return "If"
	case KindTuple:
		return "Tuple"
	case KindBasicType:
		return "BasicType"
	case KindTupleType:
		return "TupleType"
	case KindStructType:
		return "StructType"
	case KindFunType:
		return "FunType"
	default:
		return "Invalid"
	}
}

// IsType reports whether the kind belongs to the type-class (spec §3.2).
func (k Kind) IsType() bool {
	return k == KindBasicType || k == KindTupleType || k == KindStructType || k == KindFunType
}

// Flags is a bitset of per-node attributes (spec §3.1).
type Flags uint8

const (
	// FlagConst marks an immutable binding (a const Var, or a value derived
	// from one).
	FlagConst Flags = 1 << iota
	// FlagRValue marks that the node's value is consumed by its parent,
	// rather than discarded (e.g. the last expression of a function body,
	// or the branches of an `if` used as a value).
	FlagRValue
	// FlagUnresolved marks a node left over from a failed/partial resolve
	// pass; codegen must never reach one (spec invariant: every expression
	// has a non-null type at codegen entry).
	FlagUnresolved
	// FlagUnsafe marks a node whose lowering requires relaxed checks
	// (reserved for pointer arithmetic extensions; unused by the core
	// operations in this spec but preserved as an extension point).
	FlagUnsafe
	// FlagParam marks a Var that is bound as a function parameter.
	FlagParam
)

// Has reports whether all bits in want are set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// Node is a tagged record in the typed AST (spec §3.1). Exactly one of the
// variant payload fields below is non-nil, selected by Kind. Nodes are
// allocated from an Arena and never freed individually; back-references
// (Type, Id.Target) are lookup edges, not ownership.
type Node struct {
	Kind   Kind
	Span   source.Span // encodes both pos (Span.Start) and endpos (Span.End)
	Type   *Node       // resolved type node; non-nil for every expression at codegen entry
	Flags  Flags
	IRVal  any // builder-set memoization slot; written at most once per build

	Lit        *LitData
	Var        *VarData
	Id         *IdData
	Fun        *FunData
	Block      *BlockData
	Call       *CallData
	Cast       *CastData
	Return     *ReturnData
	StructCons *StructConsData
	Selector   *SelectorData
	Index      *IndexData
	Assign     *AssignData
	BinOp      *BinOpData
	If         *IfData
	Tuple      *TupleData

	BasicType  *BasicTypeData
	TupleType  *TupleTypeData
	StructType *StructTypeData
	FunType    *FunTypeData
}

// IsConst reports whether the node is flagged as an immutable binding.
func (n *Node) IsConst() bool { return n != nil && n.Flags.Has(FlagConst) }

// IsRValue reports whether the node's value is consumed by its parent.
func (n *Node) IsRValue() bool { return n != nil && n.Flags.Has(FlagRValue) }
