package irbuilder

import (
	"fmt"

	"cogen/internal/ast"
	"cogen/internal/irtypes"
)

// buildReturn lowers a Return node (spec §4.2.8). A nil operand with a
// void-returning function emits `ret void`.
func (b *Builder) buildReturn(n *ast.Node) irtypes.Value {
	if n.Return.Value == nil {
		b.cur.setTerm("ret void")
		return irtypes.Value{Type: irtypes.Void}
	}
	v := b.BuildRValue(n.Return.Value)
	if v.Type.IsVoid() {
		b.cur.setTerm("ret void")
	} else {
		b.cur.setTerm(fmt.Sprintf("ret %s", v.String()))
	}
	return v
}
