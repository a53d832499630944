package irbuilder

import (
	"fmt"

	"cogen/internal/ast"
	"cogen/internal/irtypes"
)

// buildAssign lowers an Assign node, dispatching to the scalar or tuple
// destructure form (spec §4.2.12).
func (b *Builder) buildAssign(n *ast.Node) irtypes.Value {
	if len(n.Assign.Targets) == 1 && len(n.Assign.Sources) == 1 {
		return b.buildScalarAssign(n, n.Assign.Targets[0], n.Assign.Sources[0])
	}
	return b.buildTupleAssign(n)
}

func (b *Builder) buildScalarAssign(n, target, source *ast.Node) irtypes.Value {
	place := b.assignTargetPlace(target)
	src := b.BuildRValue(source)
	b.cur.emit(fmt.Sprintf("store %s %s, ptr %s", src.Type.String(), src.Text, place.Text))
	if n.IsRValue() {
		return b.loadPlace(place)
	}
	return irtypes.Value{Type: irtypes.Void}
}

// buildTupleAssign lowers a parallel tuple destructure (spec §4.2.12). Every
// source is loaded before any target is stored, so `(a, b) = (b, a)`
// swaps correctly even when targets and sources alias.
func (b *Builder) buildTupleAssign(n *ast.Node) irtypes.Value {
	srcVals := make([]irtypes.Value, len(n.Assign.Sources))
	for i, s := range n.Assign.Sources {
		srcVals[i] = b.BuildRValue(s)
	}

	places := b.ensureAssignTargets(n.Assign.Targets)

	for i, place := range places {
		b.cur.emit(fmt.Sprintf("store %s %s, ptr %s", srcVals[i].Type.String(), srcVals[i].Text, place.Text))
	}

	if !n.IsRValue() {
		return irtypes.Value{Type: irtypes.Void}
	}

	loaded := make([]irtypes.Value, len(places))
	for i, place := range places {
		loaded[i] = b.loadPlace(place)
	}
	fields := make([]irtypes.Field, len(loaded))
	for i, v := range loaded {
		fields[i] = irtypes.Field{Name: fmt.Sprintf("_%d", i), Type: v.Type}
	}
	anon := irtypes.Struct("", fields)
	return b.buildAggregate(anon, loaded, true)
}

// ensureAssignTargets resolves every assignment target to a place,
// allocating a fresh local for any target that is a definition (a Var node
// not yet bound) rather than a reference to an existing binding.
func (b *Builder) ensureAssignTargets(targets []*ast.Node) []irtypes.Value {
	places := make([]irtypes.Value, len(targets))
	for i, t := range targets {
		places[i] = b.assignTargetPlace(t)
	}
	return places
}

func (b *Builder) assignTargetPlace(target *ast.Node) irtypes.Value {
	switch target.Kind {
	case ast.KindId:
		return b.buildIdPlace(target)
	case ast.KindVar:
		if target.IRVal == nil {
			b.buildVarDef(target)
		}
		place, _ := target.IRVal.(irtypes.Value)
		return place
	case ast.KindSelector:
		return b.buildSelectorPlace(target)
	case ast.KindIndex:
		return b.buildIndexPlace(target)
	default:
		b.internalError(target, "assignTargetPlace: node kind %s is not assignable", target.Kind)
		return irtypes.Value{}
	}
}
