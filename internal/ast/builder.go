package ast

import "cogen/internal/source"

// Builder constructs well-formed nodes against a shared Arena. It exists so
// tests can assemble a typed AST directly,
// the way a resolver would, without hand-wiring every pointer (spec §1:
// parsing/resolution are external collaborators; this is the minimal stand-in
// needed to feed the core).
type Builder struct {
	Arena *Arena
}

// NewBuilder creates a Builder backed by a fresh Arena with the given
// capacity hint.
func NewBuilder(capHint int) *Builder {
	return &Builder{Arena: NewArena(capHint)}
}

func (b *Builder) alloc(kind Kind, span source.Span) *Node {
	n := b.Arena.New(kind)
	n.Span = span
	return n
}

// BasicType returns the canonical Node for a primitive type code. Callers
// may call this repeatedly; each call allocates a fresh Node, but the type
// interner (internal/types) deduplicates them by structure once interned.
func (b *Builder) BasicType(code BasicTypeCode) *Node {
	n := b.alloc(KindBasicType, source.Span{})
	n.BasicType = &BasicTypeData{Code: code}
	return n
}

// TupleType builds a TupleType node over the given element types.
func (b *Builder) TupleType(elems ...*Node) *Node {
	n := b.alloc(KindTupleType, source.Span{})
	n.TupleType = &TupleTypeData{Elems: elems}
	return n
}

// StructType builds a named StructType node.
func (b *Builder) StructType(name string, fields ...StructFieldType) *Node {
	n := b.alloc(KindStructType, source.Span{})
	n.StructType = &StructTypeData{Name: name, Fields: fields}
	return n
}

// FunType builds a FunType node (params, possibly nil result).
func (b *Builder) FunType(result *Node, params ...*Node) *Node {
	n := b.alloc(KindFunType, source.Span{})
	n.FunType = &FunTypeData{Params: params, Result: result}
	return n
}

// IntLit builds an integer literal of the given type.
func (b *Builder) IntLit(typ *Node, val int64) *Node {
	n := b.alloc(KindIntLit, source.Span{})
	n.Type = typ
	n.Flags |= FlagRValue
	n.Lit = &LitData{IntVal: val}
	return n
}

// FloatLit builds a float literal of the given type.
func (b *Builder) FloatLit(typ *Node, val float64) *Node {
	n := b.alloc(KindFloatLit, source.Span{})
	n.Type = typ
	n.Flags |= FlagRValue
	n.Lit = &LitData{FloatVal: val}
	return n
}

// BoolLit builds a boolean literal.
func (b *Builder) BoolLit(boolType *Node, val bool) *Node {
	n := b.alloc(KindBoolLit, source.Span{})
	n.Type = boolType
	n.Flags |= FlagRValue
	n.Lit = &LitData{BoolVal: val}
	return n
}

// VarOpts configures Var construction.
type VarOpts struct {
	Const bool
	Param bool
	Init  *Node
}

// Var declares a binding of the given type.
func (b *Builder) Var(name string, typ *Node, opts VarOpts) *Node {
	n := b.alloc(KindVar, source.Span{})
	n.Type = typ
	if opts.Const {
		n.Flags |= FlagConst
	}
	if opts.Param {
		n.Flags |= FlagParam
	}
	n.Var = &VarData{Name: name, Init: opts.Init}
	return n
}

// Id references a previously declared Var, or names a Fun by value (spec
// §4.2.4: a function reference lowers through the same Id/Target path a
// variable reference does).
func (b *Builder) Id(target *Node) *Node {
	n := b.alloc(KindId, source.Span{})
	n.Type = target.Type
	n.Flags |= FlagRValue
	n.Id = &IdData{Name: idTargetName(target), Target: target}
	return n
}

func idTargetName(target *Node) string {
	if target.Kind == KindFun {
		return target.Fun.Name
	}
	return target.Var.Name
}

// Fun declares a function; pass a nil body for an external declaration.
func (b *Builder) Fun(name string, funType *Node, params []*Node, body *Node) *Node {
	n := b.alloc(KindFun, source.Span{})
	n.Type = funType
	n.Fun = &FunData{Name: name, Params: params, Result: funType.FunType.Result, Body: body}
	return n
}

// Block sequences expressions; the block's value is its last expression.
func (b *Builder) Block(exprs ...*Node) *Node {
	n := b.alloc(KindBlock, source.Span{})
	if len(exprs) > 0 {
		n.Type = exprs[len(exprs)-1].Type
	}
	n.Block = &BlockData{Exprs: exprs}
	return n
}

// Call applies callee to args.
func (b *Builder) Call(callee *Node, resultType *Node, args ...*Node) *Node {
	n := b.alloc(KindCall, source.Span{})
	n.Type = resultType
	n.Flags |= FlagRValue
	n.Call = &CallData{Callee: callee, Args: args}
	return n
}

// Cast converts arg to targetType.
func (b *Builder) Cast(targetType, arg *Node) *Node {
	n := b.alloc(KindTypeCast, source.Span{})
	n.Type = targetType
	n.Flags |= FlagRValue
	n.Cast = &CastData{Arg: arg}
	return n
}

// Return builds a return statement; value may be nil.
func (b *Builder) Return(value *Node) *Node {
	n := b.alloc(KindReturn, source.Span{})
	n.Return = &ReturnData{Value: value}
	return n
}

// BinOp builds a binary operation.
func (b *Builder) BinOp(resultType *Node, op BinOpKind, left, right *Node) *Node {
	n := b.alloc(KindBinOp, source.Span{})
	n.Type = resultType
	n.Flags |= FlagRValue
	n.BinOp = &BinOpData{Op: op, Left: left, Right: right}
	return n
}

// If builds a conditional; elseBranch may be nil. asRValue marks whether
// the if-expression's value is consumed by its parent (spec §4.2.15).
func (b *Builder) If(resultType *Node, cond, thenBranch, elseBranch *Node, asRValue bool) *Node {
	n := b.alloc(KindIf, source.Span{})
	n.Type = resultType
	if asRValue {
		n.Flags |= FlagRValue
	}
	n.If = &IfData{Cond: cond, Then: thenBranch, Else: elseBranch}
	return n
}

// Tuple builds a tuple value expression.
func (b *Builder) Tuple(tupleType *Node, elems ...*Node) *Node {
	n := b.alloc(KindTuple, source.Span{})
	n.Type = tupleType
	n.Flags |= FlagRValue
	n.Tuple = &TupleData{Elems: elems}
	return n
}

// StructCons builds a struct literal; fields may be given in any order, the
// IR builder places each by name into the struct type's declared order.
func (b *Builder) StructCons(structType *Node, fields ...StructConsField) *Node {
	n := b.alloc(KindStructCons, source.Span{})
	n.Type = structType
	n.Flags |= FlagRValue
	n.StructCons = &StructConsData{Fields: fields}
	return n
}

// Selector builds a `operand.member` field access.
func (b *Builder) Selector(resultType, operand *Node, member string) *Node {
	n := b.alloc(KindSelector, source.Span{})
	n.Type = resultType
	n.Flags |= FlagRValue
	n.Selector = &SelectorData{Operand: operand, Member: member}
	return n
}

// Index builds a tuple index expression; index must be a compile-time IntLit.
func (b *Builder) Index(resultType, operand, index *Node) *Node {
	n := b.alloc(KindIndex, source.Span{})
	n.Type = resultType
	n.Flags |= FlagRValue
	n.Index = &IndexData{Operand: operand, Index: index}
	return n
}

// Assign builds a scalar or tuple-destructure assignment. asRValue marks
// whether the assignment's post-assignment value is consumed.
func (b *Builder) Assign(targets, sources []*Node, asRValue bool) *Node {
	n := b.alloc(KindAssign, source.Span{})
	if asRValue {
		n.Flags |= FlagRValue
	}
	n.Assign = &AssignData{Targets: targets, Sources: sources}
	return n
}
