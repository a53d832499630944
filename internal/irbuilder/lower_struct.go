package irbuilder

import (
	"fmt"
	"strings"

	"cogen/internal/ast"
	"cogen/internal/diag"
	"cogen/internal/irtypes"
)

// buildStructCons lowers a StructCons node (spec §4.2.9). Fields are
// matched into the struct type's declared order by name, not by the
// literal's syntax order, so field initializers may appear in any order.
func (b *Builder) buildStructCons(n *ast.Node) irtypes.Value {
	t := b.internType(n.Type)

	values := make([]irtypes.Value, len(t.Fields))
	set := make([]bool, len(t.Fields))
	for _, fc := range n.StructCons.Fields {
		idx := t.FieldIndex(fc.Name)
		if idx < 0 {
			b.internalError(n, "buildStructCons: unknown field %q on %s", fc.Name, t.StructName)
			continue
		}
		values[idx] = b.BuildRValue(fc.Value)
		set[idx] = true
	}
	for i, ok := range set {
		if !ok {
			values[i] = irtypes.Zero(t.Fields[i].Type)
		}
	}
	return b.buildAggregate(t, values, !n.IsConst())
}

// buildTuple lowers a Tuple node the same way as an anonymous struct
// literal (spec §4.2.13): its IR type is the interned tuple-as-struct
// handle, and its value is the address of the constructed aggregate.
func (b *Builder) buildTuple(n *ast.Node) irtypes.Value {
	t := b.internType(n.Type)
	values := make([]irtypes.Value, len(n.Tuple.Elems))
	for i, e := range n.Tuple.Elems {
		values[i] = b.BuildRValue(e)
	}
	return b.buildAggregate(t, values, !n.IsConst())
}

// buildAggregate implements the anonymous struct literal helper (spec
// §4.2.13): given an ordered list of values and a mutability flag, it picks
// one of three lowerings and returns the address of the result.
func (b *Builder) buildAggregate(t *irtypes.Type, values []irtypes.Value, mutable bool) irtypes.Value {
	allConst := true
	for _, v := range values {
		if !v.IsConst() {
			allConst = false
			break
		}
	}

	if allConst && !mutable {
		lit := aggregateLiteralText(t, values)
		name := b.newAnonGlobal()
		b.mod.Globals = append(b.mod.Globals, &Global{
			Name:    name,
			Type:    t,
			Init:    irtypes.Value{Text: lit, Type: t},
			Private: true,
		})
		return irtypes.Value{Text: "@" + name, Type: t}
	}

	reg := b.fn.newReg()
	b.cur.emit(fmt.Sprintf("%s = alloca %s", reg, t.String()))
	place := irtypes.Value{Text: reg, Type: t}

	if allConst {
		lit := aggregateLiteralText(t, values)
		b.cur.emit(fmt.Sprintf("store %s %s, ptr %s", t.String(), lit, reg))
		return place
	}

	for i, v := range values {
		elemType := t.Fields[i].Type
		gep := b.fn.newReg()
		b.cur.emit(fmt.Sprintf("%s = getelementptr inbounds %s, ptr %s, i32 0, i32 %d", gep, t.String(), reg, i))
		b.cur.emit(fmt.Sprintf("store %s %s, ptr %s", elemType.String(), v.Text, gep))
	}
	return place
}

func aggregateLiteralText(t *irtypes.Type, values []irtypes.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (b *Builder) newAnonGlobal() string {
	name := fmt.Sprintf("anon.%d", b.nextAnon)
	b.nextAnon++
	return name
}

// buildSelectorPlace lowers `operand.member` to the address of the field
// via structure GEP with the field's declaration-order index (spec §4.2.10;
// per §9, never hard-coded to zero).
func (b *Builder) buildSelectorPlace(n *ast.Node) irtypes.Value {
	operandPlace := b.BuildRValue(n.Selector.Operand)
	idx := operandPlace.Type.FieldIndex(n.Selector.Member)
	if idx < 0 {
		b.userError(n, diag.CodegenUnknownField, "type %s has no field %q", operandPlace.Type.String(), n.Selector.Member)
		return irtypes.Value{}
	}
	fieldType := operandPlace.Type.Fields[idx].Type
	reg := b.fn.newReg()
	b.cur.emit(fmt.Sprintf("%s = getelementptr inbounds %s, ptr %s, i32 0, i32 %d",
		reg, operandPlace.Type.String(), operandPlace.Text, idx))
	return irtypes.Value{Text: reg, Type: fieldType}
}
