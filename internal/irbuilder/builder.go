package irbuilder

import (
	"fmt"

	"cogen/internal/ast"
	"cogen/internal/diag"
	"cogen/internal/irtypes"
	"cogen/internal/source"
	"cogen/internal/types"
)

// Builder is the recursive AST visitor that emits IR (spec §4.2). A Builder
// is single-use: construct one per build_module call. It holds no
// process-wide mutable state, so a process may run many Builders
// concurrently provided each owns its own Module and Interner (spec §5).
type Builder struct {
	Interner *types.Interner
	Diags    diag.Reporter

	mod *Module
	fn  *Func
	cur *Block

	// nextAnon gives every anonymous global (the anonymous-struct
	// literal helper, spec §4.2.13) a distinct name within the module.
	nextAnon int
}

// New creates a Builder over a fresh module with the given source filename.
func New(interner *types.Interner, diags diag.Reporter, sourceFilename string) *Builder {
	return &Builder{
		Interner: interner,
		Diags:    diags,
		mod:      NewModule(sourceFilename),
	}
}

// Module returns the module built so far.
func (b *Builder) Module() *Module { return b.mod }

func (b *Builder) internType(n *ast.Node) *irtypes.Type {
	t := b.Interner.Intern(n)
	b.mod.declareStruct(t)
	return t
}

// BuildPackage builds every file in the package, globals before functions
// within each file (spec §4.2.17).
func (b *Builder) BuildPackage(pkg *ast.Package) *Module {
	for _, f := range pkg.Files {
		b.buildFile(f)
	}
	return b.mod
}

func (b *Builder) buildFile(f *ast.File) {
	b.mod.SourceFilename = f.Name
	for _, decl := range f.Decls {
		if decl.Kind == ast.KindVar {
			b.buildGlobal(decl)
		}
	}
	for _, decl := range f.Decls {
		if decl.Kind == ast.KindFun {
			b.BuildRValue(decl)
		}
	}
}

// BuildRValue lowers n and returns its loaded value (spec §9's as_rvalue
// entry point, replacing the source's mutable noload flag).
func (b *Builder) BuildRValue(n *ast.Node) irtypes.Value {
	if n == nil {
		return irtypes.Value{Text: "", Type: irtypes.Void}
	}
	// Var's irval memoizes its place (a mutable var's alloca, or a const
	// var's value), not its rvalue, so it is excluded from the generic
	// memoization check and handled inside buildVarDef instead.
	if n.Kind != ast.KindVar {
		if v, ok := n.IRVal.(irtypes.Value); ok {
			return v
		}
	}
	switch n.Kind {
	case ast.KindIntLit, ast.KindFloatLit, ast.KindBoolLit:
		return b.buildLit(n)
	case ast.KindVar:
		return b.buildVarDef(n)
	case ast.KindId:
		return b.buildIdRValue(n)
	case ast.KindFun:
		return b.buildFun(n)
	case ast.KindBlock:
		return b.buildBlock(n)
	case ast.KindCall:
		return b.buildCall(n)
	case ast.KindTypeCast:
		return b.buildCast(n)
	case ast.KindReturn:
		return b.buildReturn(n)
	case ast.KindStructCons:
		return b.buildStructCons(n)
	case ast.KindSelector:
		return b.loadPlace(b.buildSelectorPlace(n))
	case ast.KindIndex:
		return b.loadPlace(b.buildIndexPlace(n))
	case ast.KindAssign:
		return b.buildAssign(n)
	case ast.KindBinOp:
		return b.buildBinOp(n)
	case ast.KindIf:
		return b.buildIf(n)
	case ast.KindTuple:
		return b.buildTuple(n)
	default:
		b.internalError(n, "build_expr: unknown node kind %s", n.Kind)
		return irtypes.Value{}
	}
}

// BuildPlace lowers n and returns the address at which its value lives
// (spec §9's as_place entry point). Only node kinds that denote a memory
// location may be built this way; anything else is an internal error.
func (b *Builder) BuildPlace(n *ast.Node) irtypes.Value {
	if n == nil {
		b.internalError(n, "build_place: nil node")
		return irtypes.Value{}
	}
	switch n.Kind {
	case ast.KindId:
		return b.buildIdPlace(n)
	case ast.KindSelector:
		return b.buildSelectorPlace(n)
	case ast.KindIndex:
		return b.buildIndexPlace(n)
	default:
		b.internalError(n, "build_place: node kind %s has no place", n.Kind)
		return irtypes.Value{}
	}
}

// loadPlace emits a load of the field/element type if the place denotes a
// memory location, mirroring the source's noload==false path. Aggregates
// (structs, tuples) are represented by their address everywhere, including
// as rvalues, so loading one is a no-op: the address IS the value.
func (b *Builder) loadPlace(place irtypes.Value) irtypes.Value {
	elemType := place.Type
	if elemType == nil || elemType.Kind == irtypes.KStruct {
		return place
	}
	reg := b.fn.newReg()
	b.cur.emit(fmt.Sprintf("%s = load %s, ptr %s", reg, elemType.String(), place.Text))
	return irtypes.Value{Text: reg, Type: elemType}
}

func (b *Builder) internalError(n *ast.Node, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	var span any
	if n != nil {
		span = n.Span
	}
	panic(fmt.Sprintf("irbuilder: internal error at %v: %s", span, msg))
}

func (b *Builder) userError(n *ast.Node, code diag.Code, format string, args ...any) {
	if b.Diags == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	var sp source.Span
	if n != nil {
		sp = n.Span
	}
	b.Diags.Report(code, diag.SevError, sp, msg, nil, nil)
}
