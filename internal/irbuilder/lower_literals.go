package irbuilder

import (
	"cogen/internal/ast"
	"cogen/internal/irtypes"
)

// buildLit lowers IntLit/FloatLit/BoolLit to a constant IR value (spec
// §4.2.2). Literals never touch the current block; they are pure values.
func (b *Builder) buildLit(n *ast.Node) irtypes.Value {
	t := b.internType(n.Type)
	var v irtypes.Value
	switch n.Kind {
	case ast.KindIntLit:
		v = irtypes.ConstInt(t, n.Lit.IntVal)
	case ast.KindFloatLit:
		v = irtypes.ConstFloat(t, n.Lit.FloatVal)
	case ast.KindBoolLit:
		v = irtypes.ConstBool(n.Lit.BoolVal)
	default:
		b.internalError(n, "buildLit: not a literal kind %s", n.Kind)
	}
	n.IRVal = v
	return v
}
