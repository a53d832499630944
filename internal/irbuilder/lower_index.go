package irbuilder

import (
	"fmt"

	"cogen/internal/ast"
	"cogen/internal/irtypes"
)

// buildIndexPlace lowers tuple indexing (spec §4.2.11). The index must be
// a compile-time integer literal; the operand's address (itself a tuple
// value, which is already an address under this builder's aggregate
// convention) is used to compute an inbounds GEP to the element.
func (b *Builder) buildIndexPlace(n *ast.Node) irtypes.Value {
	operandPlace := b.BuildRValue(n.Index.Operand)
	if n.Index.Index.Kind != ast.KindIntLit {
		b.internalError(n, "buildIndexPlace: tuple index must be a compile-time integer literal")
	}
	idx := int(n.Index.Index.Lit.IntVal)
	if idx < 0 || idx >= len(operandPlace.Type.Fields) {
		b.internalError(n, "buildIndexPlace: index %d out of range for %s", idx, operandPlace.Type.String())
	}
	elemType := operandPlace.Type.Fields[idx].Type
	reg := b.fn.newReg()
	b.cur.emit(fmt.Sprintf("%s = getelementptr inbounds %s, ptr %s, i32 0, i32 %d",
		reg, operandPlace.Type.String(), operandPlace.Text, idx))
	return irtypes.Value{Text: reg, Type: elemType}
}
