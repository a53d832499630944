package irbuilder

import (
	"cogen/internal/ast"
	"cogen/internal/irtypes"
)

// buildBlock lowers a sequence of expressions; the block's value is its
// last expression's value, or the null value if empty (spec §4.2.5). A
// block never introduces its own basic blocks or control flow.
func (b *Builder) buildBlock(n *ast.Node) irtypes.Value {
	var last irtypes.Value
	for _, e := range n.Block.Exprs {
		last = b.BuildRValue(e)
	}
	return last
}
