package irbuilder

import (
	"fmt"

	"cogen/internal/ast"
	"cogen/internal/irtypes"
)

// buildVarDef lowers a Var node's declaration (spec §4.2.3). A const var's
// irval is its initializer's value (or a zero constant). A mutable var
// allocates stack memory, stores the initializer if present, and its irval
// is the alloca pointer.
func (b *Builder) buildVarDef(n *ast.Node) irtypes.Value {
	if place, ok := n.IRVal.(irtypes.Value); ok {
		if n.IsConst() {
			return place
		}
		return b.loadPlace(place)
	}

	t := b.internType(n.Type)

	if n.IsConst() {
		var v irtypes.Value
		if n.Var.Init != nil {
			v = b.BuildRValue(n.Var.Init)
		} else {
			v = irtypes.Zero(t)
		}
		n.IRVal = v
		return v
	}

	reg := b.fn.newReg()
	b.cur.emit(fmt.Sprintf("%s = alloca %s", reg, t.String()))
	place := irtypes.Value{Text: reg, Type: t}
	if n.Var.Init != nil {
		initVal := b.BuildRValue(n.Var.Init)
		b.cur.emit(fmt.Sprintf("store %s %s, ptr %s", t.String(), initVal.Text, reg))
	}
	n.IRVal = place
	return b.loadPlace(place)
}

// buildIdRValue lowers an Id node by resolving through its target (spec
// §4.2.3): a const target's value is returned directly; a mutable target
// is loaded through its pointer.
func (b *Builder) buildIdRValue(n *ast.Node) irtypes.Value {
	target := n.Id.Target
	if target.Kind == ast.KindFun {
		return b.BuildRValue(target)
	}
	if target.IRVal == nil {
		b.internalError(n, "buildIdRValue: target %q not yet built", n.Id.Name)
	}
	if target.IsConst() {
		v, _ := target.IRVal.(irtypes.Value)
		return v
	}
	place, _ := target.IRVal.(irtypes.Value)
	return b.loadPlace(place)
}

// buildIdPlace returns the address of a mutable var referenced by Id (spec
// §4.2.3's load_var under noload). Referencing a const var as a place is an
// internal error: a resolved AST never assigns to a const binding.
func (b *Builder) buildIdPlace(n *ast.Node) irtypes.Value {
	target := n.Id.Target
	if target.IRVal == nil {
		b.internalError(n, "buildIdPlace: target %q not yet built", n.Id.Name)
	}
	if target.IsConst() {
		b.internalError(n, "buildIdPlace: target %q is const, has no address", n.Id.Name)
	}
	place, _ := target.IRVal.(irtypes.Value)
	return place
}
