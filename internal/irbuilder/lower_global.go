package irbuilder

import (
	"cogen/internal/ast"
	"cogen/internal/irtypes"
)

// buildGlobal lowers a top-level Var declaration (spec §4.2.16). A constant
// initializer is built without an active function or block: at module
// scope every reachable subexpression must itself be constant-foldable
// (literals, and aggregates built entirely of constants), so the aggregate
// helper's global-constant path is the only one ever exercised here.
func (b *Builder) buildGlobal(n *ast.Node) {
	t := b.internType(n.Type)

	var init irtypes.Value
	if n.Var.Init != nil {
		init = b.BuildRValue(n.Var.Init)
	} else {
		init = irtypes.Zero(t)
	}

	name := n.Var.Name
	b.mod.Globals = append(b.mod.Globals, &Global{
		Name:    name,
		Type:    t,
		Init:    init,
		Private: true,
	})
	n.IRVal = irtypes.Value{Text: "@" + name, Type: t}
}
